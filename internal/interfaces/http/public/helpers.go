package public

import (
	"net/http"

	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/common"
	"github.com/agenda23/restaurant-media-api/internal/interfaces/http/form"
	publicapp "github.com/agenda23/restaurant-media-api/internal/public/application"
)

func (h *Handler) parsePaging(r *http.Request) publicapp.Paging {
	query := r.URL.Query()
	page, _ := common.ParsePositiveInt(query.Get("page"), 1)
	limit, _ := common.ParsePositiveInt(query.Get("limit"), 0)
	if limit > common.MaxPageLimit {
		limit = common.MaxPageLimit
	}
	return publicapp.Paging{Page: page, Limit: limit}
}

func (h *Handler) writeNotFound(w http.ResponseWriter, message string) {
	common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]any{
		"success": false,
		"message": message,
	})
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, message string) {
	common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]any{
		"success": false,
		"message": message,
	})
}

func (h *Handler) writeValidationError(w http.ResponseWriter, errs form.FieldErrors) {
	common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]any{
		"success": false,
		"message": "入力内容に誤りがあります",
		"errors":  errs,
	})
}

// writeServerError は詳細をログに残し、応答には定型メッセージのみ載せる。
func (h *Handler) writeServerError(w http.ResponseWriter, message string, err error) {
	h.logger.Printf("%s: %v", message, err)
	common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]any{
		"success": false,
		"message": message,
	})
}
