package model

import "time"

type EnsaVersion string

const (
	EnsaVersionV1      EnsaVersion = "v1"
	EnsaVersionV2      EnsaVersion = "v2"
	EnsaVersionMixed   EnsaVersion = "mixed"
	EnsaVersionUnknown EnsaVersion = "unknown"
)

type SapSystem struct {
	ID             string      `json:"id" gorm:"primaryKey"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
	SID            string      `json:"sid"`
	EnsaVersion    EnsaVersion `json:"ensaVersion"`
	DeregisteredAt *time.Time  `json:"deregisteredAt,omitempty"`
}

// ApplicationInstance is an SAP application server instance discovered on a
// host. It links a host to the SAP system owning the instance.
type ApplicationInstance struct {
	SapSystemID    string    `json:"sapSystemId" gorm:"primaryKey"`
	InstanceNumber string    `json:"instanceNumber" gorm:"primaryKey"`
	HostID         string    `json:"hostId" gorm:"primaryKey"`
	SID            string    `json:"sid"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
