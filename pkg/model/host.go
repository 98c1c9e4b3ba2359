package model

import "time"

type Host struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	Hostname       string     `json:"hostname"`
	ClusterID      *string    `json:"clusterId,omitempty"`
	AgentVersion   string     `json:"agentVersion"`
	DeregisteredAt *time.Time `json:"deregisteredAt,omitempty"`
}
