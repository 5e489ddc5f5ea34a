package service

import (
	"thesis-defense-backend/app/model"
	"thesis-defense-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// aktorDariContext merekonstruksi model.Actor dari nilai yang di-inject
// AuthMiddleware. Mengembalikan false jika request tidak terautentikasi;
// setiap handler wajib memperlakukan ini sebagai Unauthorized.
func aktorDariContext(ctx *gin.Context) (model.Actor, bool) {
	roleI, ok := ctx.Get(middleware.CtxRole)
	if !ok {
		return model.Actor{}, false
	}
	role, ok := roleI.(model.Role)
	if !ok || !role.Valid() {
		return model.Actor{}, false
	}

	userID, ok := uuidDariContext(ctx, middleware.CtxUserID)
	if !ok || userID == uuid.Nil {
		return model.Actor{}, false
	}

	mahasiswaID, _ := uuidDariContext(ctx, middleware.CtxMahasiswaID)
	dosenID, _ := uuidDariContext(ctx, middleware.CtxDosenID)

	return model.Actor{
		UserID:      userID,
		MahasiswaID: mahasiswaID,
		DosenID:     dosenID,
		Role:        role,
	}, true
}

// uuidDariContext membantu mengambil uuid.UUID dari gin.Context key tertentu.
func uuidDariContext(ctx *gin.Context, key string) (uuid.UUID, bool) {
	if v, ok := ctx.Get(key); ok {
		if id, ok2 := v.(uuid.UUID); ok2 {
			return id, true
		}
	}
	return uuid.Nil, false
}
