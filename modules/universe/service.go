package universe

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lorekit/lorekit/pkg/authz"
	"github.com/lorekit/lorekit/pkg/rbac"
	"github.com/lorekit/lorekit/pkg/session"
)

// Service implements the universe management handlers. Route-level guards
// cover the coarse permission checks; handlers that distinguish own from any
// possession decide the query themselves based on ownership.
type Service struct {
	storage     Storage
	memberships MembershipStore
	auth        *authz.Authorizer
	log         *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger used for storage failures.
func WithServiceLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) { s.log = log }
}

// NewService creates the universe service.
func NewService(storage Storage, memberships MembershipStore, auth *authz.Authorizer, opts ...ServiceOption) *Service {
	s := &Service{
		storage:     storage,
		memberships: memberships,
		auth:        auth,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type memberRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	universes, err := s.storage.List(r.Context())
	if err != nil {
		s.serverError(w, r, "list universes", err)
		return
	}
	if universes == nil {
		universes = []Universe{}
	}
	respondJSON(w, http.StatusOK, universes)
}

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	sess := authz.SessionFromContext(r.Context())

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrInvalidPayload)
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, ErrNameRequired)
		return
	}

	now := time.Now().UTC()
	u := Universe{
		ID:          uuid.New(),
		OwnerID:     sess.UserID,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.storage.Create(r.Context(), u); err != nil {
		s.serverError(w, r, "create universe", err)
		return
	}

	// The creator runs their own world.
	err := s.memberships.Upsert(r.Context(), session.Membership{
		UserID:     sess.UserID,
		UniverseID: u.ID,
		Role:       string(rbac.RoleGameMaster),
		CreatedAt:  now,
	})
	if err != nil {
		s.serverError(w, r, "create owner membership", err)
		return
	}

	respondJSON(w, http.StatusCreated, u)
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	u, err := s.storage.Get(r.Context(), universeIDFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, ErrUniverseNotFound) {
			respondError(w, http.StatusNotFound, ErrUniverseNotFound)
			return
		}
		s.serverError(w, r, "get universe", err)
		return
	}
	respondJSON(w, http.StatusOK, u)
}

func (s *Service) handleUpdate(w http.ResponseWriter, r *http.Request) {
	sess := authz.SessionFromContext(r.Context())
	if !sess.IsAuthenticated() {
		respondError(w, http.StatusUnauthorized, authz.ErrAuthenticationRequired)
		return
	}

	u, err := s.storage.Get(r.Context(), universeIDFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, ErrUniverseNotFound) {
			respondError(w, http.StatusNotFound, ErrUniverseNotFound)
			return
		}
		s.serverError(w, r, "get universe", err)
		return
	}

	var allowed authz.Decision
	if u.OwnerID == sess.UserID {
		allowed = s.auth.Can(sess).UpdateOwn(authz.ResourceUnivers)
	} else {
		allowed = s.auth.CanInUniverse(sess).UpdateAny(authz.ResourceUnivers)
	}
	if !allowed.Granted {
		respondError(w, http.StatusForbidden, authz.ErrForbidden)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrInvalidPayload)
		return
	}
	if req.Name != nil {
		if *req.Name == "" {
			respondError(w, http.StatusBadRequest, ErrNameRequired)
			return
		}
		u.Name = *req.Name
	}
	if req.Description != nil {
		u.Description = *req.Description
	}
	u.UpdatedAt = time.Now().UTC()

	if err := s.storage.Update(r.Context(), u); err != nil {
		s.serverError(w, r, "update universe", err)
		return
	}
	respondJSON(w, http.StatusOK, u)
}

func (s *Service) handleDelete(w http.ResponseWriter, r *http.Request) {
	sess := authz.SessionFromContext(r.Context())
	if !sess.IsAuthenticated() {
		respondError(w, http.StatusUnauthorized, authz.ErrAuthenticationRequired)
		return
	}

	u, err := s.storage.Get(r.Context(), universeIDFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, ErrUniverseNotFound) {
			respondError(w, http.StatusNotFound, ErrUniverseNotFound)
			return
		}
		s.serverError(w, r, "get universe", err)
		return
	}

	var allowed authz.Decision
	if u.OwnerID == sess.UserID {
		allowed = s.auth.Can(sess).DeleteOwn(authz.ResourceUnivers)
	} else {
		allowed = s.auth.Can(sess).DeleteAny(authz.ResourceUnivers)
	}
	if !allowed.Granted {
		respondError(w, http.StatusForbidden, authz.ErrForbidden)
		return
	}

	if err := s.storage.Delete(r.Context(), u.ID); err != nil {
		s.serverError(w, r, "delete universe", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleJoin(w http.ResponseWriter, r *http.Request) {
	sess := authz.SessionFromContext(r.Context())
	universeID := universeIDFromContext(r.Context())

	if _, err := s.storage.Get(r.Context(), universeID); err != nil {
		if errors.Is(err, ErrUniverseNotFound) {
			respondError(w, http.StatusNotFound, ErrUniverseNotFound)
			return
		}
		s.serverError(w, r, "get universe", err)
		return
	}

	// Joining never elevates: an existing membership keeps its role.
	if _, err := s.memberships.FindRole(r.Context(), sess.UserID, universeID); err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	err := s.memberships.Upsert(r.Context(), session.Membership{
		UserID:     sess.UserID,
		UniverseID: universeID,
		Role:       string(rbac.RoleSpectator),
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		s.serverError(w, r, "join universe", err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Service) handleListMembers(w http.ResponseWriter, r *http.Request) {
	memberships, err := s.memberships.ListByUniverse(r.Context(), universeIDFromContext(r.Context()))
	if err != nil {
		s.serverError(w, r, "list members", err)
		return
	}

	members := make([]Member, 0, len(memberships))
	for _, m := range memberships {
		members = append(members, Member{UserID: m.UserID, Role: m.Role, JoinedAt: m.CreatedAt})
	}
	respondJSON(w, http.StatusOK, members)
}

func (s *Service) handleAddMember(w http.ResponseWriter, r *http.Request) {
	universeID := universeIDFromContext(r.Context())

	var req memberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrInvalidPayload)
		return
	}
	if req.UserID == uuid.Nil {
		respondError(w, http.StatusBadRequest, ErrInvalidPayload)
		return
	}
	switch rbac.RoleID(req.Role) {
	case rbac.RoleSpectator, rbac.RoleRolePlayer, rbac.RoleGameMaster:
	default:
		respondError(w, http.StatusBadRequest, ErrInvalidRole)
		return
	}

	err := s.memberships.Upsert(r.Context(), session.Membership{
		UserID:     req.UserID,
		UniverseID: universeID,
		Role:       req.Role,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		s.serverError(w, r, "add member", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrInvalidPayload)
		return
	}

	if err := s.memberships.Delete(r.Context(), userID, universeIDFromContext(r.Context())); err != nil {
		s.serverError(w, r, "remove member", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.log.ErrorContext(r.Context(), op+" failed", slog.Any("error", err))
	respondError(w, http.StatusInternalServerError, errors.New("universe.internal_error"))
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": err.Error()})
}
