package get_available_slots

import (
	"context"
	"fmt"
)

// UseCase use case подбора свободного времени профессионала
type UseCase struct {
	store        DocumentStore
	hours        WorkingHours
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store DocumentStore, hours WorkingHours, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		hours:        hours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает слоты профессионала на дату. Результат справочный:
// окончательная проверка пересечений выполняется при оформлении.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: staff=%s, date=%s, duration=%d", req.StaffID, req.Date, req.DurationMinutes)

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	requestDate, err := validateRequest(req, now.Location())
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}
	duration := req.DurationMinutes
	if duration <= 0 {
		duration = uc.hours.StepMinutes
	}

	// 2. Проверка даты
	if err := validateDate(requestDate, now, uc.hours.AdvanceDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date %s rejected: %v", req.Date, err)
		return nil, err
	}

	// 3. Документ и профессионал
	doc, err := uc.store.Load(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load document: %v", err)
		return nil, fmt.Errorf("%w: failed to load document: %v", ErrInternal, err)
	}
	if doc.FindStaff(req.StaffID) == nil {
		uc.logger.Warn("GetAvailableSlots: staff=%s not found", req.StaffID)
		return nil, ErrStaffNotFound
	}

	// 4. Сетка слотов и пересечения
	starts, err := generateStarts(uc.hours, duration, requestDate, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid working hours: %v", err)
		return nil, fmt.Errorf("%w: invalid working hours: %v", ErrInternal, err)
	}
	slots, err := markAvailability(doc, req.StaffID, req.Date, starts, duration)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}

	free := 0
	for _, s := range slots {
		if s.Available {
			free++
		}
	}
	uc.logger.Info("GetAvailableSlots: staff=%s, date=%s: %d of %d slots free", req.StaffID, req.Date, free, len(slots))

	return &Response{
		StaffID:         req.StaffID,
		Date:            req.Date,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}
