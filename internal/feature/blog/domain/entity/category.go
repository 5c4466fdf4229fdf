// Package entity defines the domain entities for the blog feature.
package entity

// Category groups posts under a unique name.
// A category owns its posts: deleting a category deletes every post that
// references it, together with their comments.
type Category struct {
	// ID is the unique identifier for the category.
	ID uint `gorm:"primaryKey"`

	// Name is the unique display name of the category.
	Name string `gorm:"uniqueIndex;size:255;not null"`

	// Description is an optional free-text description.
	Description string `gorm:"type:text"`

	// Posts are the posts published under this category.
	Posts []Post `gorm:"foreignKey:CategoryID"`
}
