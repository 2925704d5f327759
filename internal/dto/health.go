package dto

type HealthStatus struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	CheckedAt string `json:"checkedAt,omitempty"`
}
