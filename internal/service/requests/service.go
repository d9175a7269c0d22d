package requests

import (
	"context"
	"errors"
	"fmt"

	"github.com/caninecompadre/booking-service/internal/domain"
	requestRepo "github.com/caninecompadre/booking-service/internal/infra/storage/request"
)

// Service covers the individual walk request lifecycle: submission,
// staff review, completion.
type Service struct {
	requestRepo  RequestRepository
	dogRepo      DogRepository
	calendar     CalendarClient
	mailer       Mailer
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the requests service.
func NewService(
	requestRepo RequestRepository,
	dogRepo DogRepository,
	calendar CalendarClient,
	mailer Mailer,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		requestRepo:  requestRepo,
		dogRepo:      dogRepo,
		calendar:     calendar,
		mailer:       mailer,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create stores an individual walk request with its dogs and sends the
// acknowledgement emails. The request row and the dog rows commit
// atomically; the emails run after commit.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*CreateResult, error) {
	s.logger.Info("CreateRequest: customer=%s, date=%s, dogs=%d",
		req.CustomerEmail, req.PreferredDate.Format(domain.DateFormat), req.DogCount)

	if err := validateCreateRequest(req, s.timeProvider.Now()); err != nil {
		s.logger.Warn("CreateRequest: validation failed: %v", err)
		return nil, err
	}

	request := &domain.IndividualRequest{
		Customer: domain.Customer{
			Name:     req.CustomerName,
			Email:    req.CustomerEmail,
			Phone:    req.CustomerPhone,
			Address:  req.CustomerAddress,
			Postcode: req.CustomerPostcode,
		},
		PreferredDate:     req.PreferredDate,
		PreferredTimeText: req.PreferredTimeText,
		Reason:            req.Reason,
		DogCount:          req.DogCount,
		Status:            domain.RequestPending,
	}

	var dogs []*domain.Dog

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		dogs = make([]*domain.Dog, 0, len(req.Dogs))
		for i := range req.Dogs {
			dogs = append(dogs, req.Dogs[i].toDomain())
		}

		if _, err := s.requestRepo.Create(txCtx, request); err != nil {
			s.logger.Error("CreateRequest: failed to create request: %v", err)
			return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
		}

		if err := s.dogRepo.CreateBatch(txCtx, domain.IndividualRequestOwner(request.ID), dogs); err != nil {
			s.logger.Error("CreateRequest: failed to create dogs for request %d: %v", request.ID, err)
			return fmt.Errorf("%w: failed to create dogs: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("CreateRequest: request %d stored", request.ID)

	emailSent := true
	if err := s.mailer.SendRequestReceived(request, dogs); err != nil {
		s.logger.Error("CreateRequest: acknowledgement email failed for request %d: %v", request.ID, err)
		emailSent = false
	}
	if err := s.mailer.SendAdminNewRequest(request, dogs); err != nil {
		s.logger.Error("CreateRequest: admin notification failed for request %d: %v", request.ID, err)
	}

	return &CreateResult{Request: request, Dogs: dogs, EmailSent: emailSent}, nil
}

// GetByID returns a request with its dogs.
func (s *Service) GetByID(ctx context.Context, id int64) (*RequestResponse, error) {
	request, err := s.getRequest(ctx, "GetRequest", id)
	if err != nil {
		return nil, err
	}

	dogs, err := s.dogRepo.GetByOwner(ctx, domain.IndividualRequestOwner(id))
	if err != nil {
		s.logger.Error("GetRequest: failed to load dogs for request %d: %v", id, err)
		return nil, fmt.Errorf("%w: GetRequest - failed to load dogs: %v", ErrInternal, err)
	}

	return &RequestResponse{Request: request, Dogs: dogs}, nil
}

// List returns requests matching the filter.
func (s *Service) List(ctx context.Context, req *ListRequest) ([]*domain.IndividualRequest, error) {
	filter, err := req.toDomainFilter()
	if err != nil {
		s.logger.Warn("ListRequests: invalid filter: %v", err)
		return nil, err
	}

	result, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListRequests: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRequests - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRequests: fetched %d request(s)", len(result))
	return result, nil
}

// Review approves or rejects a pending request. The status transition
// commits first; the calendar event and the decision email follow and
// never undo the decision.
func (s *Service) Review(ctx context.Context, req *ReviewRequest) (*ReviewResult, error) {
	if err := validateReviewRequest(req, s.timeProvider.Now()); err != nil {
		s.logger.Warn("ReviewRequest: validation failed: %v", err)
		return nil, err
	}

	var request *domain.IndividualRequest

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Locks the row, so two staff decisions on one request serialize
		current, err := s.requestRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				s.logger.Warn("ReviewRequest: request %d not found", req.ID)
				return ErrRequestNotFound
			}
			s.logger.Error("ReviewRequest: repository error for request %d: %v", req.ID, err)
			return fmt.Errorf("%w: ReviewRequest - repository error: %v", ErrInternal, err)
		}

		if !current.CanBeReviewed() {
			s.logger.Warn("ReviewRequest: request %d has status %s", req.ID, current.Status)
			return ErrCannotReview
		}

		if req.Approve {
			current.Approve(*req.ConfirmedDate, *req.ConfirmedTimeText, req.AdminResponse)
		} else {
			current.Reject(req.AdminResponse)
		}

		if err := s.requestRepo.SaveReview(txCtx, current); err != nil {
			s.logger.Error("ReviewRequest: failed to save review for request %d: %v", req.ID, err)
			return fmt.Errorf("%w: ReviewRequest - failed to save review: %v", ErrInternal, err)
		}

		request = current
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("ReviewRequest: request %d %s", req.ID, request.Status)

	result := &ReviewResult{Request: request}

	if request.Status == domain.RequestApproved {
		eventID, err := s.calendar.CreateIndividualWalkEvent(ctx, request)
		if err != nil {
			s.logger.Error("ReviewRequest: calendar sync failed for request %d: %v", req.ID, err)
		} else if err := s.requestRepo.SetCalendarEventID(ctx, req.ID, &eventID); err != nil {
			s.logger.Error("ReviewRequest: failed to store calendar event id for request %d: %v", req.ID, err)
		} else {
			request.CalendarEventID = &eventID
			result.CalendarSynced = true
		}
	}

	dogs, err := s.dogRepo.GetByOwner(ctx, domain.IndividualRequestOwner(req.ID))
	if err != nil {
		s.logger.Error("ReviewRequest: failed to load dogs for request %d: %v", req.ID, err)
		dogs = nil
	}
	if err := s.mailer.SendRequestDecision(request, dogs); err != nil {
		s.logger.Error("ReviewRequest: decision email failed for request %d: %v", req.ID, err)
	} else {
		result.EmailSent = true
	}

	return result, nil
}

// Complete marks an approved request as walked.
func (s *Service) Complete(ctx context.Context, id int64) (*domain.IndividualRequest, error) {
	request, err := s.getRequest(ctx, "CompleteRequest", id)
	if err != nil {
		return nil, err
	}

	if !request.CanBeCompleted() {
		s.logger.Warn("CompleteRequest: request %d has status %s", id, request.Status)
		return nil, ErrCannotComplete
	}

	if err := s.requestRepo.UpdateStatus(ctx, id, domain.RequestCompleted); err != nil {
		s.logger.Error("CompleteRequest: repository error for request %d: %v", id, err)
		return nil, fmt.Errorf("%w: CompleteRequest - repository error: %v", ErrInternal, err)
	}
	request.Status = domain.RequestCompleted

	s.logger.Info("CompleteRequest: request %d completed", id)
	return request, nil
}

func (s *Service) getRequest(ctx context.Context, op string, id int64) (*domain.IndividualRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("%s: request %d not found", op, id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("%s: repository error for request %d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return request, nil
}
