package storage

import "time"

// DateLayout is the calendar-date format used for streak bookkeeping.
const DateLayout = "2006-01-02"

type Task struct {
	ID             int64
	Text           string
	Difficulty     string
	Deadline       time.Time
	CreatedAt      time.Time
	NotificationID *string
}

type Profile struct {
	Key            string
	Level          int
	Experience     int
	TotalCompleted int
	CurrentStreak  int
	LongestStreak  int
	// LastCompletedDate is a DateLayout calendar date; nil before the first
	// ever completion.
	LastCompletedDate *string
}

type HistoryEntry struct {
	ID          int64
	TaskText    string
	Difficulty  string
	ExpEarned   int
	Deadline    time.Time
	CompletedAt time.Time
	WasOverdue  bool
}

type HistoryStats struct {
	TotalCompleted   int `json:"totalCompleted"`
	TotalExpEarned   int `json:"totalExpEarned"`
	OverdueCompleted int `json:"overdueCompleted"`
	EasyCount        int `json:"easyCount"`
	MediumCount      int `json:"mediumCount"`
	HardCount        int `json:"hardCount"`
}
