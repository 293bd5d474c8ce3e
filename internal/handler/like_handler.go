package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

type LikeResponse struct {
	PostId string `json:"postId"`
	IsLike bool   `json:"isLike"`
}

// ToggleLike переключает лайк текущего пользователя на посте:
// нет лайка -> поставлен, поставлен -> снят, снят -> поставлен снова
func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["postId"]

	isLike, err := h.EngagementService.ToggleLike(r.Context(), postID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, LikeResponse{PostId: postID, IsLike: isLike}, http.StatusOK)
}
