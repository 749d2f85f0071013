package models

import "time"

// ContactSubmission is a contact-us form entry. ContactNumber, EmailID and
// Message are stored encrypted; the repository applies the field codec so
// everything above it only ever sees plaintext.
type ContactSubmission struct {
	ID            uint   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ContactID     string `gorm:"column:contact_id;type:uuid;uniqueIndex" json:"contactId"`
	FirstName     string `gorm:"column:first_name;type:text" json:"firstName"`
	LastName      string `gorm:"column:last_name;type:text" json:"lastName"`
	ContactNumber string `gorm:"column:contact_number;type:text" json:"contactNumber"`
	Subject       string `gorm:"column:subject;type:text" json:"subject"`
	Message       string `gorm:"column:message;type:text" json:"message"`
	EmailID       string `gorm:"column:email_id;type:text" json:"emailId"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (ContactSubmission) TableName() string { return "contact_us_forms" }

// CareerSubmission is a career form entry. Resume references a Media row by
// its mediaId; the referential check happens in the service before persist.
type CareerSubmission struct {
	ID            uint   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	CareerID      string `gorm:"column:career_id;type:uuid;uniqueIndex" json:"careerId"`
	FirstName     string `gorm:"column:first_name;type:text" json:"firstName"`
	LastName      string `gorm:"column:last_name;type:text" json:"lastName"`
	ContactNumber string `gorm:"column:contact_number;type:text" json:"contactNumber"`
	PortfolioLink string `gorm:"column:portfolio_link;type:text" json:"portfolioLink"`
	Message       string `gorm:"column:message;type:text" json:"message"`
	EmailID       string `gorm:"column:email_id;type:text" json:"emailId"`
	Resume        string `gorm:"column:resume;type:uuid" json:"resume"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`

	ResumePDF *Media `gorm:"foreignKey:Resume;references:MediaID" json:"resumePDF,omitempty"`
}

func (CareerSubmission) TableName() string { return "career_forms" }
