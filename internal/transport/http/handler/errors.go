package handler

const (
	errInternalServer      = "Internal server error"
	errInvalidCronExpr     = "Invalid cron expression"
	errUnsupportedSchedule = "Schedule has no calendar fields to describe"
)
