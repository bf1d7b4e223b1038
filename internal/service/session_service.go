package service

import (
	"context"
	"errors"
	"time"

	"brand-chatbot-be/internal/constant"
	"brand-chatbot-be/internal/dto"
	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/pkg/serverutils"
	"brand-chatbot-be/internal/repository/contract"
	"brand-chatbot-be/internal/repository/specification"
	"brand-chatbot-be/internal/repository/unitofwork"
	"brand-chatbot-be/pkg/events"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ISessionService interface {
	Start(ctx context.Context, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error)
	RecordMessage(ctx context.Context, sessionKey string, req *dto.RecordMessageRequest) (*dto.RecordMessageResponse, error)
	CaptureContact(ctx context.Context, sessionKey string, req *dto.CaptureContactRequest) (*dto.SessionResponse, error)
	End(ctx context.Context, sessionKey string, req *dto.EndSessionRequest) (*dto.SessionResponse, error)
	Show(ctx context.Context, sessionKey string) (*dto.SessionDetailResponse, error)
}

type sessionService struct {
	uowFactory       unitofwork.RepositoryFactory
	brandService     IBrandService
	userService      IUserService
	publisherService IPublisherService
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	brandService IBrandService,
	userService IUserService,
	publisherService IPublisherService,
) ISessionService {
	return &sessionService{
		uowFactory:       uowFactory,
		brandService:     brandService,
		userService:      userService,
		publisherService: publisherService,
	}
}

func (s *sessionService) Start(ctx context.Context, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error) {
	brand, err := s.brandService.GetActiveByKey(ctx, req.BrandKey)
	if err != nil {
		return nil, err
	}

	sessionKey := req.SessionKey
	if sessionKey == "" {
		sessionKey = uuid.NewString()
	}

	now := time.Now()
	session := &entity.Session{
		Id:         uuid.New(),
		SessionKey: sessionKey,
		BrandId:    brand.Id,
		Status:     entity.SessionStatusActive,
		StartedAt:  now,
		// Seeded from StartedAt so a session that never sees a message still
		// ages out.
		LastActivity: now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, serverutils.NewConflictError("session_key already exists")
		}
		return nil, err
	}

	s.publisherService.PublishSessionEvent(ctx, constant.TopicSessionStarted,
		events.NewSessionEvent(events.TypeSessionStarted, session.SessionKey, brand.BrandKey))

	return &dto.StartSessionResponse{
		SessionKey: session.SessionKey,
		BrandKey:   brand.BrandKey,
		Status:     string(session.Status),
		StartedAt:  session.StartedAt,
	}, nil
}

func (s *sessionService) RecordMessage(ctx context.Context, sessionKey string, req *dto.RecordMessageRequest) (*dto.RecordMessageResponse, error) {
	role := entity.MessageRole(req.Role)
	if !role.Valid() {
		return nil, serverutils.NewBadRequestError("invalid message role")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = uow.Rollback()
		}
	}()

	session, err := uow.SessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: sessionKey})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("session not found")
	}
	if session.Status.Terminal() {
		return nil, serverutils.NewConflictError("session is not active")
	}

	now := time.Now()
	touched, err := uow.SessionRepository().Touch(ctx, sessionKey, contract.TouchUpdate{
		Role:         role,
		InputTokens:  req.InputTokens,
		OutputTokens: req.OutputTokens,
	}, now)
	if err != nil {
		return nil, err
	}
	if !touched {
		// Lost a race with the reaper or an explicit close between the read
		// above and the conditional update. The update matched zero rows, so
		// nothing was written.
		return nil, serverutils.NewConflictError("session is not active")
	}

	order, err := uow.MessageRepository().NextOrder(ctx, session.Id)
	if err != nil {
		return nil, err
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "text"
	}

	message := &entity.Message{
		Id:               uuid.New(),
		SessionId:        session.Id,
		Role:             role,
		Content:          req.Content,
		FormattedContent: req.FormattedContent,
		ContentType:      contentType,
		FileName:         req.FileName,
		FileSize:         req.FileSize,
		InputTokens:      req.InputTokens,
		OutputTokens:     req.OutputTokens,
		TotalTokens:      req.InputTokens + req.OutputTokens,
		MessageOrder:     order,
		CreatedAt:        now,
	}
	if err := uow.MessageRepository().Create(ctx, message); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, serverutils.NewConflictError("concurrent message write, retry")
		}
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	committed = true

	if session.UserId != nil {
		s.incrementInteraction(ctx, *session.UserId, session.BrandId, contract.InteractionDelta{
			Messages:     1,
			InputTokens:  req.InputTokens,
			OutputTokens: req.OutputTokens,
		})
	}

	return &dto.RecordMessageResponse{
		MessageOrder: order,
		MessageCount: session.MessageCount + 1,
		RecordedAt:   now,
	}, nil
}

func (s *sessionService) CaptureContact(ctx context.Context, sessionKey string, req *dto.CaptureContactRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: sessionKey})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("session not found")
	}
	if session.Status.Terminal() {
		return nil, serverutils.NewConflictError("session is not active")
	}

	user, err := s.userService.GetOrCreate(ctx, req)
	if err != nil {
		return nil, err
	}

	if session.UserId == nil || *session.UserId != user.Id {
		if err := uow.SessionRepository().AssignUser(ctx, session.Id, user.Id); err != nil {
			return nil, err
		}
		session.UserId = &user.Id

		_ = s.userService.RecordConversation(ctx, user.Id)
		s.incrementInteraction(ctx, user.Id, session.BrandId, contract.InteractionDelta{
			Sessions: 1,
			Messages: session.MessageCount,
		})
	}

	return s.toSessionResponse(ctx, session), nil
}

func (s *sessionService) End(ctx context.Context, sessionKey string, req *dto.EndSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	closed, err := uow.SessionRepository().Close(ctx, sessionKey, entity.SessionStatusEnded, now)
	if err != nil {
		return nil, err
	}

	session, err := uow.SessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: sessionKey})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("session not found")
	}

	// Closing an already-terminal session is a no-op, and no duplicate
	// summary mail goes out for it.
	if closed {
		brand, err := s.brandService.GetById(ctx, session.BrandId)
		if err == nil && brand != nil {
			ev := events.NewSessionEvent(events.TypeSessionEnded, session.SessionKey, brand.BrandKey)
			ev.Data["send_email"] = req.SendEmail
			s.publisherService.PublishSessionEvent(ctx, constant.TopicSessionEnded, ev)
		}
	}

	return s.toSessionResponse(ctx, session), nil
}

func (s *sessionService) Show(ctx context.Context, sessionKey string) (*dto.SessionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: sessionKey})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("session not found")
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.OrderBy{Field: "message_order"},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.SessionDetailResponse{
		Session:  *s.toSessionResponse(ctx, session),
		Messages: make([]dto.MessageResponse, 0, len(messages)),
	}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, dto.MessageResponse{
			Role:         string(m.Role),
			Content:      m.Content,
			ContentType:  m.ContentType,
			MessageOrder: m.MessageOrder,
			TotalTokens:  m.TotalTokens,
			CreatedAt:    m.CreatedAt,
		})
	}
	return resp, nil
}

func (s *sessionService) toSessionResponse(ctx context.Context, session *entity.Session) *dto.SessionResponse {
	brandKey := ""
	if brand, err := s.brandService.GetById(ctx, session.BrandId); err == nil && brand != nil {
		brandKey = brand.BrandKey
	}

	return &dto.SessionResponse{
		SessionKey:      session.SessionKey,
		BrandKey:        brandKey,
		UserId:          session.UserId,
		Status:          string(session.Status),
		StartedAt:       session.StartedAt,
		LastActivity:    session.LastActivity,
		EndedAt:         session.EndedAt,
		DurationSeconds: session.DurationSeconds,
		MessageCount:    session.MessageCount,
		TotalTokens:     session.TotalTokens,
		EmailSent:       session.EmailSent,
	}
}

func (s *sessionService) incrementInteraction(ctx context.Context, userId, brandId uuid.UUID, delta contract.InteractionDelta) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	// Rollup maintenance is best-effort; a miss is corrected by the daily
	// summary job.
	_ = uow.AnalyticsRepository().IncrementInteraction(ctx, userId, brandId, delta)
}
