package models

import (
	"time"

	"gorm.io/gorm"
)

// Loan status values
const (
	LoanStatusBorrowed = "borrowed"
	LoanStatusReturned = "returned"
)

// User represents the users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
	}
}

// Book represents the books table
type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Author    string    `gorm:"size:255;not null" json:"author"`
	Stock     int       `gorm:"not null;default:0" json:"stock"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

// Loan represents the borrows table. The book title is denormalized so
// history survives even if the book row changes later.
type Loan struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Reference  string     `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	UserID     uint       `gorm:"index;not null" json:"user_id"`
	BookID     uint       `gorm:"index;not null" json:"book_id"`
	BookTitle  string     `gorm:"size:255;not null" json:"book_title"`
	Status     string     `gorm:"size:20;not null" json:"status"`
	BorrowDate time.Time  `gorm:"autoCreateTime" json:"borrow_date"`
	ReturnDate *time.Time `json:"return_date"`
	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Book       Book       `gorm:"foreignKey:BookID" json:"-"`
}

func (Loan) TableName() string {
	return "borrows"
}

// IsActive reports whether the loan is still open
func (l *Loan) IsActive() bool {
	return l.Status == LoanStatusBorrowed
}

// AutoMigrate creates or updates the schema
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Book{},
		&Loan{},
	)
}
