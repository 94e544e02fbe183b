package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/WashRewards_Go/internal/domain"
	"github.com/osse101/WashRewards_Go/internal/loyalty"
)

// LoyaltyHandler exposes the loyalty service over HTTP
type LoyaltyHandler struct {
	service loyalty.Service
	now     func() time.Time
}

// NewLoyaltyHandler creates a new loyalty handler
func NewLoyaltyHandler(service loyalty.Service) *LoyaltyHandler {
	return &LoyaltyHandler{
		service: service,
		now:     time.Now,
	}
}

func (h *LoyaltyHandler) evalTime(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return h.now()
}

// HandleGetTiers lists the configured tiers
// @Summary List tiers
// @Description Returns the tier table in rank order (lowest first)
// @Tags loyalty
// @Produce json
// @Success 200 {object} TiersResponse
// @Router /api/v1/tiers [get]
func (h *LoyaltyHandler) HandleGetTiers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, TiersResponse{Tiers: h.service.Tiers()})
}

// HandleGetTier returns a single tier by id
// @Summary Get tier
// @Tags loyalty
// @Produce json
// @Param id path string true "Tier id"
// @Success 200 {object} domain.TierConfig
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tiers/{id} [get]
func (h *LoyaltyHandler) HandleGetTier(w http.ResponseWriter, r *http.Request) {
	params := TierPathParams{ID: chi.URLParam(r, "id")}
	if err := GetValidator().ValidateStruct(params); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return
	}

	cfg, err := h.service.Tier(r.Context(), params.ID)
	if err != nil {
		respondServiceError(w, r, ErrMsgTierLookupFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

// HandleSummary computes the full loyalty summary for a profile
// @Summary Loyalty summary
// @Description Tier, tier progress, level, streak bonus and milestones, offers and referral code
// @Tags loyalty
// @Accept json
// @Produce json
// @Param request body SummaryRequest true "Profile"
// @Success 200 {object} domain.LoyaltySummary
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/loyalty/summary [post]
func (h *LoyaltyHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Loyalty summary"); err != nil {
		return
	}

	summary, err := h.service.Summary(r.Context(), req.UserID, req.Profile, h.evalTime(req.Now))
	if err != nil {
		respondServiceError(w, r, ErrMsgSummaryFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// HandleWashPoints computes what a wash earns
// @Summary Wash earnings
// @Description Points (tier multiplier then streak bonus) and XP for one wash
// @Tags points
// @Accept json
// @Produce json
// @Param request body WashRequest true "Wash"
// @Success 200 {object} domain.WashEarnings
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/points/wash [post]
func (h *LoyaltyHandler) HandleWashPoints(w http.ResponseWriter, r *http.Request) {
	var req WashRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Wash points"); err != nil {
		return
	}
	if req.Amount.IsNegative() {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: map[string]string{"amount": "Must be at least 0"},
		})
		return
	}

	earnings, err := h.service.WashEarnings(r.Context(), loyalty.WashInput{
		Amount:           req.Amount,
		IsFirstWashToday: req.IsFirstWashToday,
		Profile:          req.Profile,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgWashEarningsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, earnings)
}

// HandleCheckRedemption decides whether a reward can be redeemed.
// A denial is a normal 200 response carrying the first failing reason.
// @Summary Check redemption
// @Tags rewards
// @Accept json
// @Produce json
// @Param request body RedemptionRequest true "Reward and profile"
// @Success 200 {object} domain.RedemptionDecision
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/redemption/check [post]
func (h *LoyaltyHandler) HandleCheckRedemption(w http.ResponseWriter, r *http.Request) {
	var req RedemptionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Check redemption"); err != nil {
		return
	}

	respondJSON(w, http.StatusOK, h.service.CheckRedemption(r.Context(), req.Reward, req.Profile))
}

// HandleEvaluateBadges returns catalog badges newly unlocked by the given stats
// @Summary Evaluate badges
// @Tags badges
// @Accept json
// @Produce json
// @Param request body BadgesRequest true "Stats and already earned badge codes"
// @Success 200 {object} BadgesResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/badges/evaluate [post]
func (h *LoyaltyHandler) HandleEvaluateBadges(w http.ResponseWriter, r *http.Request) {
	var req BadgesRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Evaluate badges"); err != nil {
		return
	}

	earned := make(map[string]bool, len(req.Earned))
	for _, code := range req.Earned {
		earned[code] = true
	}

	defs := h.service.EvaluateBadges(r.Context(), req.Stats, earned)
	views := make([]BadgeView, 0, len(defs))
	for _, d := range defs {
		views = append(views, BadgeView{Code: d.Code, Name: d.Name, Description: d.Description, Icon: d.Icon})
	}
	respondJSON(w, http.StatusOK, BadgesResponse{Unlocked: views})
}

// HandleEvaluateCondition evaluates one badge condition against stats
// @Summary Evaluate badge condition
// @Tags badges
// @Accept json
// @Produce json
// @Param request body ConditionRequest true "Condition and stats"
// @Success 200 {object} ConditionResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/badges/condition [post]
func (h *LoyaltyHandler) HandleEvaluateCondition(w http.ResponseWriter, r *http.Request) {
	var req ConditionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Evaluate condition"); err != nil {
		return
	}

	cond := domain.BadgeCondition{
		Type:     domain.StatType(req.Condition.Type),
		Operator: domain.Operator(req.Condition.Operator),
		Value:    req.Condition.Value,
	}
	respondJSON(w, http.StatusOK, ConditionResponse{Met: h.service.EvaluateCondition(r.Context(), cond, req.Stats)})
}

// HandleOffers returns personalized offers
// @Summary Personalized offers
// @Tags offers
// @Accept json
// @Produce json
// @Param request body OffersRequest true "Profile"
// @Success 200 {object} OffersResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/offers [post]
func (h *LoyaltyHandler) HandleOffers(w http.ResponseWriter, r *http.Request) {
	var req OffersRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Offers"); err != nil {
		return
	}

	respondJSON(w, http.StatusOK, OffersResponse{Offers: h.service.Offers(r.Context(), req.Profile, h.evalTime(req.Now))})
}

// HandleReferralCode derives a display referral code
// @Summary Referral code
// @Description Codes are derived from a non-cryptographic hash; they collide and must not be used as identifiers
// @Tags referral
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {object} ReferralCodeResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/referral/code [get]
func (h *LoyaltyHandler) HandleReferralCode(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, ReferralCodeResponse{UserID: userID, Code: h.service.ReferralCode(r.Context(), userID)})
}

// HandleReferralRewards returns the fixed referral payout
// @Summary Referral rewards
// @Tags referral
// @Produce json
// @Success 200 {object} domain.ReferralRewards
// @Router /api/v1/referral/rewards [get]
func (h *LoyaltyHandler) HandleReferralRewards(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.ReferralRewards())
}
