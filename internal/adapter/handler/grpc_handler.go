package handler

import (
	"context"
	"errors"

	"github.com/vqle/catalog-service/internal/adapter/handler/pb"
	"github.com/vqle/catalog-service/internal/core/domain"
	"github.com/vqle/catalog-service/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedCatalogServiceServer
	orders *service.OrderService
}

func NewGRPCHandler(orders *service.OrderService) *GRPCHandler {
	return &GRPCHandler{orders: orders}
}

func (h *GRPCHandler) SubmitOrder(ctx context.Context, req *pb.SubmitOrderRequest) (*pb.SubmitOrderResponse, error) {
	result, err := h.orders.SubmitOrder(ctx, req.GetProductId(), int(req.GetQuantity()), req.GetRequestId())
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			return &pb.SubmitOrderResponse{
				Success: false,
				Message: de.Message,
			}, nil
		}
		return &pb.SubmitOrderResponse{
			Success: false,
			Message: "internal error",
		}, nil
	}

	return &pb.SubmitOrderResponse{
		Success: true,
		OrderNo: result.OrderNo,
		Message: result.Message,
	}, nil
}
