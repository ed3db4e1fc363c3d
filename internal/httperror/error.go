// Package httperror implements the error response body of the API.
package httperror

type Error struct {
	Message string `json:"error" example:"there is no expense matching your query"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}
