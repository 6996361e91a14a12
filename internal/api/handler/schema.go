package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse acknowledges operations that have no resource to return.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest uses pointers so an omitted field can be told apart
// from an empty one.
type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1"`
	Password *string `json:"password" validate:"omitempty,min=1"`
}

type postContentRequest struct {
	Content string `json:"content" validate:"required"`
}

// --- Response types ---

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type loginResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

// userCreatedResponse is the registration reply: the new account plus
// a confirmation message.
type userCreatedResponse struct {
	Message string `json:"message"`
	userResponse
}

type authorResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type postResponse struct {
	ID      int64          `json:"id"`
	Content string         `json:"content"`
	Author  authorResponse `json:"author"`
}

// postMessageResponse is returned by post create and edit.
type postMessageResponse struct {
	Message string `json:"message"`
	postResponse
}

// postSummaryResponse is the per-user listing shape; the author is implied
// by the path.
type postSummaryResponse struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}
