package tasksdk

import "time"

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountResponse is the public view of an account. The password hash never
// serializes; this type is the only account shape that crosses the wire.
type AccountResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// CreateTaskRequest is the body for POST /tasks. Server-assigned fields
// (id, createdAt) are not accepted from the client.
type CreateTaskRequest struct {
	Title     string `json:"title"`
	Priority  string `json:"priority,omitempty"`
	Completed bool   `json:"completed"`
}

// UpdateTaskRequest is the body for PATCH /tasks/{id}. Absent fields are
// left unchanged.
type UpdateTaskRequest struct {
	Title     *string `json:"title,omitempty"`
	Priority  *string `json:"priority,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// TaskResponse is the public view of a task. The owner id is implicit in
// the authenticated session and never serializes.
type TaskResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Priority  string    `json:"priority"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ErrorResponse is the wire shape of every error the service returns.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// HealthResponse is returned by the /livez and /readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks itemizes dependency health for /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
