package get_business

import (
	"context"

	"github.com/mmaniatis/v-tee/internal/domain"
)

type BusinessService interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
