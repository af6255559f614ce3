package domain

import "time"

type Temple struct {
	ID        uint      `json:"templeId"`
	Name      string    `json:"templeName"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
