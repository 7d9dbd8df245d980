package controllers

import (
	"errors"
	"strconv"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/pkg/resp"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/services"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/utils"

	"github.com/gin-gonic/gin"
)

type WalletController struct {
	Svc *services.WalletService
}

func NewWalletController(svc *services.WalletService) *WalletController {
	return &WalletController{Svc: svc}
}

// GET /wallet
func (h *WalletController) Get(c *gin.Context) {
	w, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"balance": w.Balance})
}

// POST /wallet/topup
func (h *WalletController) TopUp(c *gin.Context) {
	var req struct {
		Amount int64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	w, err := h.Svc.TopUp(utils.CurrentUserID(c), req.Amount)
	if err != nil {
		if errors.Is(err, services.ErrBadAmount) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"balance": w.Balance})
}

// GET /wallet/transactions
func (h *WalletController) Transactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	rows, err := h.Svc.Transactions(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}
