package model

import (
	"time"
)

type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	Age          int       `db:"age" json:"age"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IdentityUID  string    `db:"identity_uid" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
