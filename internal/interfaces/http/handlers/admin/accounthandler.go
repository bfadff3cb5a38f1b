package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"atelier/internal/application/account/usecases"
	"atelier/internal/shared/constants"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

// AccountHandler covers super-admin account management.
type AccountHandler struct {
	changeRoleUC *usecases.ChangeRoleUseCase
	logger       logger.Interface
}

func NewAccountHandler(changeRoleUC *usecases.ChangeRoleUseCase) *AccountHandler {
	return &AccountHandler{
		changeRoleUC: changeRoleUC,
		logger:       logger.NewLogger(),
	}
}

type changeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin super_admin"`
}

// ChangeRole handles PUT /admin/accounts/:id/role
func (h *AccountHandler) ChangeRole(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || targetID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid account id")
		return
	}

	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "role must be user, admin or super_admin")
		return
	}

	user, err := h.changeRoleUC.Execute(c.Request.Context(), usecases.ChangeRoleCommand{
		ActorID:  c.GetUint(constants.ContextKeyUserID),
		TargetID: uint(targetID),
		Role:     req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"id":    user.ID(),
		"email": user.Email(),
		"name":  user.Name(),
		"role":  string(user.Role()),
	})
}
