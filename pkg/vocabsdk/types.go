package vocabsdk

import "time"

// RefreshCookieName is the cookie carrying the refresh token.
const RefreshCookieName = "refreshToken"

// ErrorResponse documents the error body for API docs. See APIError.
type ErrorResponse struct {
	Error   string `json:"error" example:"forbidden"`
	Message string `json:"message,omitempty" example:"token is invalid or expired"`
}

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type RegisterResponse struct {
	UserID string `json:"userId" example:"01J9X8Q4Z6M3N2B1V0C9X8Z7Y6"`
}

// TokenResponse is returned by login and refresh. The refresh token travels
// in the refreshToken cookie only.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// Identity is the caller decoded from an access token.
type Identity struct {
	UserID string `json:"userId"`
	Role   string `json:"role" example:"user"`
}

type ProtectedResponse struct {
	Message string   `json:"message"`
	User    Identity `json:"user"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

type Word struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	CourseName  string    `json:"courseName"`
	LessonName  string    `json:"lessonName"`
	Word        string    `json:"word"`
	Translation string    `json:"translation"`
	Audio       string    `json:"audio"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ImportWordsRequest imports delimited word/translation pairs into a lesson.
// Empty delimiters default to newline rows and tab columns.
type ImportWordsRequest struct {
	CourseName      string `json:"courseName,omitempty" example:"Spanish"`
	LessonName      string `json:"lessonName" example:"Food"`
	Text            string `json:"text" example:"manzana\tapple"`
	RowDelimiter    string `json:"rowDelimiter,omitempty"`
	ColumnDelimiter string `json:"columnDelimiter,omitempty"`
}

type ImportWordsResponse struct {
	Message string `json:"message"`
	Words   []Word `json:"words"`
}

type UpdateImageRequest struct {
	Image string `json:"image" example:"https://example.com/apple.png"`
}

type LessonProgress struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	CourseName string    `json:"courseName"`
	LessonName string    `json:"lessonName"`
	Repeats    int       `json:"repeats"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateProgressRequest struct {
	CourseName string `json:"courseName" example:"Spanish"`
	LessonName string `json:"lessonName" example:"Food"`
}

type SetRepeatsRequest struct {
	Repeats int `json:"repeats" example:"3"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks holds per-dependency results (readyz only)
	Checks *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
