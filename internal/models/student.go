package models

// Student is a seeded demo account. Passwords are stored and compared in
// plain text.
type Student struct {
	ID        int64  `db:"id" json:"-"`
	StudentID string `db:"student_id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Password  string `db:"password" json:"-"`
}

// StudentInfo is the public account shape returned on login.
type StudentInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Info strips the credential fields.
func (s Student) Info() StudentInfo {
	return StudentInfo{ID: s.StudentID, Name: s.Name, Email: s.Email}
}
