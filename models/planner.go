package models

import "time"

// PlannerPage is a node of the user's hierarchical planner. Pages without a
// ParentID are roots.
type PlannerPage struct {
	ID          string         `json:"id,omitempty"`
	UserID      string         `json:"userId,omitempty"`
	ParentID    *string        `json:"parentId,omitempty"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Content     []ContentBlock `json:"content,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// ContentBlock is one block of a planner page: a paragraph, heading or list.
type ContentBlock struct {
	ID        string     `json:"id,omitempty"`
	Type      string     `json:"type"`
	Content   string     `json:"content,omitempty"`
	ListItems []ListItem `json:"listItems,omitempty"`
}

// ListItem is an entry of a list block.
type ListItem struct {
	ID       string    `json:"id,omitempty"`
	Content  string    `json:"content,omitempty"`
	Checked  bool      `json:"checked,omitempty"`
	SubItems []SubItem `json:"subItems,omitempty"`
}

// SubItem is a nested entry of a list item.
type SubItem struct {
	ID      string `json:"id,omitempty"`
	Content string `json:"content,omitempty"`
	Checked bool   `json:"checked,omitempty"`
}
