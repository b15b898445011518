package models

import "time"

type AppUser struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Role      string    `json:"role" bson:"role"`
	Password  string    `json:"password,omitempty" bson:"password"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
