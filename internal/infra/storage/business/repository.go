package business

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mmaniatis/v-tee/internal/domain"
	"github.com/mmaniatis/v-tee/pkg/dbmetrics"
	"github.com/mmaniatis/v-tee/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бизнесами и их настройками
// Бизнес собирается из четырех таблиц: businesses, day_schedules,
// pricing_config и duration_config
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бизнес со всеми настройками
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	business, err := r.getBusinessRow(ctx, executor, id)
	if err != nil {
		return nil, err
	}

	schedule, err := r.getWeekSchedule(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	business.Schedule = schedule

	pricing, err := r.getPricing(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	business.Pricing = *pricing

	durations, err := r.getDurations(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	business.Durations = *durations

	return business, nil
}

// UpdateSchedule заменяет недельное расписание бизнеса
// Расписание обновляется целиком (все 7 дней), upsert по (business_id, weekday)
func (r *Repository) UpdateSchedule(ctx context.Context, businessID int64, schedule domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, day := range schedule {
		query, args, err := psqlbuilder.Insert("day_schedules").
			Columns("business_id", "weekday", "is_open", "open_time", "close_time", "peak_hours_enabled").
			Values(businessID, int(day.Weekday), day.IsOpen, day.OpenTime, day.CloseTime, day.PeakHoursEnabled).
			Suffix("ON CONFLICT (business_id, weekday) DO UPDATE SET " +
				"is_open = EXCLUDED.is_open, " +
				"open_time = EXCLUDED.open_time, " +
				"close_time = EXCLUDED.close_time, " +
				"peak_hours_enabled = EXCLUDED.peak_hours_enabled").
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: UpdateSchedule - build upsert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: UpdateSchedule - execute upsert: %v", ErrExecQuery, err)
		}
	}

	return r.touchBusiness(ctx, executor, businessID)
}

// UpdatePricing обновляет конфигурацию цен бизнеса
func (r *Repository) UpdatePricing(ctx context.Context, businessID int64, pricing *domain.PricingConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pricing_config").
		Set("weekday_price", pricing.WeekdayPrice).
		Set("weekend_price", pricing.WeekendPrice).
		Set("peak_hour_pricing_enabled", pricing.PeakHourPricingEnabled).
		Set("peak_hour_start", pricing.PeakHourStart).
		Set("peak_hour_end", pricing.PeakHourEnd).
		Set("peak_hour_additional_cost", pricing.PeakHourAdditionalCost).
		Set("solo_discount", pricing.SoloDiscount).
		Set("membership_discount", pricing.MembershipDiscount).
		Set("membership_monthly_cost", pricing.MembershipMonthlyCost).
		Set("membership_yearly_cost", pricing.MembershipYearlyCost).
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePricing - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePricing - execute update: %v", ErrExecQuery, err)
	}

	if err := requireRow(result); err != nil {
		return err
	}

	return r.touchBusiness(ctx, executor, businessID)
}

// UpdateDurations обновляет конфигурацию длительностей бронирования
func (r *Repository) UpdateDurations(ctx context.Context, businessID int64, durations *domain.DurationConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("duration_config").
		Set("min_duration_minutes", durations.MinDuration).
		Set("max_duration_minutes", durations.MaxDuration).
		Set("interval_minutes", durations.IntervalMinutes).
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDurations - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDurations - execute update: %v", ErrExecQuery, err)
	}

	if err := requireRow(result); err != nil {
		return err
	}

	return r.touchBusiness(ctx, executor, businessID)
}

// UpdateBranding обновляет брендинг (цвета и текст логотипа)
func (r *Repository) UpdateBranding(ctx context.Context, businessID int64, ui *domain.UISettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("businesses").
		Set("primary_color", ui.PrimaryColor).
		Set("secondary_color", ui.SecondaryColor).
		Set("accent_color", ui.AccentColor).
		Set("logo_text", ui.LogoText).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateBranding - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateBranding - execute update: %v", ErrExecQuery, err)
	}

	return requireRow(result)
}

func (r *Repository) getBusinessRow(ctx context.Context, executor DBExecutor, id int64) (*domain.Business, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"location",
		"description",
		"primary_color",
		"secondary_color",
		"accent_color",
		"logo_text",
		"created_at",
		"updated_at",
	).
		From("businesses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getBusinessRow - build select query: %v", ErrBuildQuery, err)
	}

	var business domain.Business
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&business.ID,
		&business.Name,
		&business.Location,
		&business.Description,
		&business.UI.PrimaryColor,
		&business.UI.SecondaryColor,
		&business.UI.AccentColor,
		&business.UI.LogoText,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getBusinessRow - scan business: %v", ErrScanRow, err)
	}

	business.CreatedAt = createdAt.Time
	business.UpdatedAt = updatedAt.Time

	return &business, nil
}

func (r *Repository) getWeekSchedule(ctx context.Context, executor DBExecutor, businessID int64) (domain.WeekSchedule, error) {
	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_open",
		"open_time",
		"close_time",
		"peak_hours_enabled",
	).
		From("day_schedules").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getWeekSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getWeekSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := make(domain.WeekSchedule, 0, domain.DaysPerWeek)

	for rows.Next() {
		var day domain.DaySchedule
		var weekday int

		err := rows.Scan(
			&weekday,
			&day.IsOpen,
			&day.OpenTime,
			&day.CloseTime,
			&day.PeakHoursEnabled,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getWeekSchedule - scan row: %v", ErrScanRow, err)
		}

		day.Weekday = time.Weekday(weekday)
		schedule = append(schedule, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getWeekSchedule - rows error: %v", ErrScanRow, err)
	}

	if len(schedule) != domain.DaysPerWeek {
		return nil, fmt.Errorf("%w: business=%d has %d of %d day records",
			ErrIncompleteSchedule, businessID, len(schedule), domain.DaysPerWeek)
	}

	return schedule, nil
}

func (r *Repository) getPricing(ctx context.Context, executor DBExecutor, businessID int64) (*domain.PricingConfig, error) {
	query, args, err := psqlbuilder.Select(
		"weekday_price",
		"weekend_price",
		"peak_hour_pricing_enabled",
		"peak_hour_start",
		"peak_hour_end",
		"peak_hour_additional_cost",
		"solo_discount",
		"membership_discount",
		"membership_monthly_cost",
		"membership_yearly_cost",
	).
		From("pricing_config").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getPricing - build select query: %v", ErrBuildQuery, err)
	}

	var pricing domain.PricingConfig

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pricing.WeekdayPrice,
		&pricing.WeekendPrice,
		&pricing.PeakHourPricingEnabled,
		&pricing.PeakHourStart,
		&pricing.PeakHourEnd,
		&pricing.PeakHourAdditionalCost,
		&pricing.SoloDiscount,
		&pricing.MembershipDiscount,
		&pricing.MembershipMonthlyCost,
		&pricing.MembershipYearlyCost,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getPricing - scan pricing: %v", ErrScanRow, err)
	}

	return &pricing, nil
}

func (r *Repository) getDurations(ctx context.Context, executor DBExecutor, businessID int64) (*domain.DurationConfig, error) {
	query, args, err := psqlbuilder.Select(
		"min_duration_minutes",
		"max_duration_minutes",
		"interval_minutes",
	).
		From("duration_config").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getDurations - build select query: %v", ErrBuildQuery, err)
	}

	var durations domain.DurationConfig

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&durations.MinDuration,
		&durations.MaxDuration,
		&durations.IntervalMinutes,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getDurations - scan durations: %v", ErrScanRow, err)
	}

	return &durations, nil
}

// touchBusiness обновляет updated_at бизнеса после изменения настроек
func (r *Repository) touchBusiness(ctx context.Context, executor DBExecutor, businessID int64) error {
	query, args, err := psqlbuilder.Update("businesses").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: touchBusiness - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: touchBusiness - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

func requireRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBusinessNotFound
	}
	return nil
}
