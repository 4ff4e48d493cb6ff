package api

import (
	"context"
	"net/http"

	"github.com/phrazzld/coursebook/internal/api/shared"
	"github.com/phrazzld/coursebook/internal/service"
)

// Executor runs commands. *service.Dispatcher implements it.
type Executor interface {
	Execute(ctx context.Context, cmd service.Command) service.Result
}

// respond writes res with status on success, or the mapped error response.
func respond(w http.ResponseWriter, r *http.Request, status int, res service.Result) {
	if !res.OK() {
		HandleAPIError(w, r, res.Err)
		return
	}
	shared.RespondWithJSON(w, r, status, res)
}
