package models

import (
	"strings"
	"time"
)

// Category classifies a complaint into one of the fixed campus areas.
type Category string

const (
	CategoryMess      Category = "Mess"
	CategoryWiFi      Category = "WiFi/Network"
	CategoryTechnical Category = "Technical Issue"
	CategoryAcademic  Category = "Academic/Teacher"
	CategorySafety    Category = "Safety/Security"
)

// Categories returns every valid complaint category.
func Categories() []Category {
	return []Category{CategoryMess, CategoryWiFi, CategoryTechnical, CategoryAcademic, CategorySafety}
}

// NormalizeCategory coerces an untrusted classifier reply into the category
// allow-list. The reply is trimmed and must match a category exactly;
// anything else falls back to Technical Issue.
func NormalizeCategory(raw string) Category {
	candidate := Category(strings.TrimSpace(raw))
	for _, c := range Categories() {
		if candidate == c {
			return c
		}
	}
	return CategoryTechnical
}

// Sentiment grades how a complaint reads.
type Sentiment string

const (
	SentimentUrgent Sentiment = "urgent"
	SentimentAngry  Sentiment = "angry"
	SentimentNormal Sentiment = "normal"
)

// Sentiments returns every valid complaint sentiment.
func Sentiments() []Sentiment {
	return []Sentiment{SentimentUrgent, SentimentAngry, SentimentNormal}
}

// NormalizeSentiment coerces an untrusted classifier reply into the
// sentiment allow-list, falling back to normal.
func NormalizeSentiment(raw string) Sentiment {
	candidate := Sentiment(strings.TrimSpace(raw))
	for _, s := range Sentiments() {
		if candidate == s {
			return s
		}
	}
	return SentimentNormal
}

// Status is the two-state complaint lifecycle. The only transition is
// pending to resolved; it is never reversed.
type Status string

const (
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
)

// Complaint is one student-submitted issue. StudentName is a denormalized
// copy taken at submission time and is not re-synced afterwards.
type Complaint struct {
	ID            int64     `db:"id" json:"id"`
	StudentID     string    `db:"student_id" json:"student_id"`
	StudentName   string    `db:"student_name" json:"student_name"`
	ComplaintText string    `db:"complaint_text" json:"complaint_text"`
	Category      Category  `db:"category" json:"category"`
	Sentiment     Sentiment `db:"sentiment" json:"sentiment"`
	Status        Status    `db:"status" json:"status"`
	Timestamp     time.Time `db:"timestamp" json:"timestamp"`
}

// AdminComplaintView is the summary shape the admin dashboard consumes.
type AdminComplaintView struct {
	ID            int64     `json:"id"`
	StudentName   string    `json:"student_name"`
	ComplaintText string    `json:"complaint_text"`
	Category      Category  `json:"category"`
	Sentiment     Sentiment `json:"sentiment"`
	Status        Status    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

// StudentComplaintView is the summary shape students see for their own
// complaints.
type StudentComplaintView struct {
	ID            int64     `json:"id"`
	ComplaintText string    `json:"complaint_text"`
	Category      Category  `json:"category"`
	Sentiment     Sentiment `json:"sentiment"`
	Status        Status    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

// AdminView converts the record into its admin summary.
func (c Complaint) AdminView() AdminComplaintView {
	return AdminComplaintView{
		ID:            c.ID,
		StudentName:   c.StudentName,
		ComplaintText: c.ComplaintText,
		Category:      c.Category,
		Sentiment:     c.Sentiment,
		Status:        c.Status,
		Timestamp:     c.Timestamp,
	}
}

// StudentView converts the record into its student summary.
func (c Complaint) StudentView() StudentComplaintView {
	return StudentComplaintView{
		ID:            c.ID,
		ComplaintText: c.ComplaintText,
		Category:      c.Category,
		Sentiment:     c.Sentiment,
		Status:        c.Status,
		Timestamp:     c.Timestamp,
	}
}
