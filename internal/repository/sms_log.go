package repository

import (
	"context"
	"fmt"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/repository/dao"
)

type SMSLogDAO interface {
	Insert(ctx context.Context, log dao.SMSLog) (dao.SMSLog, error)
}

type SMSLogRepository struct {
	dao SMSLogDAO
}

func NewSMSLogRepository(dao SMSLogDAO) *SMSLogRepository {
	return &SMSLogRepository{
		dao: dao,
	}
}

func (r *SMSLogRepository) Create(ctx context.Context, log domain.SMSLog) (domain.SMSLog, error) {
	created, err := r.dao.Insert(ctx, dao.SMSLog{
		UserID:       log.UserID,
		MobileNumber: log.MobileNumber,
		Message:      log.Message,
		Status:       string(log.Status),
	})
	if err != nil {
		return domain.SMSLog{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return domain.SMSLog{
		ID:           created.ID,
		UserID:       created.UserID,
		MobileNumber: created.MobileNumber,
		Message:      created.Message,
		Status:       domain.SMSStatus(created.Status),
		CreatedAt:    created.CreatedAt,
	}, nil
}
