package common

const (
	KEY_DATABASE_STATUS = "database_status"
)
