package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/HeetJani123/ethos-web-collective/internal/http/httperr"
	"github.com/HeetJani123/ethos-web-collective/internal/service"
)

// ListComments — GET /journal/{id}/comments, публичный.
// Старые комментарии идут первыми; имена авторов уже разрешены.
func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	comments, err := h.svc.ListComments(r.Context(), id)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	out := CommentListResponse{Comments: make([]CommentResponse, 0, len(comments))}
	for _, c := range comments {
		out.Comments = append(out.Comments, commentResponseFrom(c))
	}

	writeJSON(w, http.StatusOK, out)
}

// CreateComment — POST /journal/{id}/comments, требует входа.
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	var in CreateCommentRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	comment, err := h.svc.CreateComment(r.Context(), service.CreateCommentInput{
		ArticleID: id,
		AuthorID:  identity.UserID,
		Content:   in.Content,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commentResponseFrom(*comment))
}
