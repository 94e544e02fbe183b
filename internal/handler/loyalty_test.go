package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WashRewards_Go/internal/badge"
	"github.com/osse101/WashRewards_Go/internal/domain"
	"github.com/osse101/WashRewards_Go/internal/loyalty"
	"github.com/osse101/WashRewards_Go/internal/tier"
	"github.com/osse101/WashRewards_Go/mocks"
)

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// newRouter mounts the handler the same way the server does so URL params resolve
func newRouter(h *LoyaltyHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/tiers", h.HandleGetTiers)
	r.Get("/tiers/{id}", h.HandleGetTier)
	r.Post("/loyalty/summary", h.HandleSummary)
	r.Post("/points/wash", h.HandleWashPoints)
	r.Post("/redemption/check", h.HandleCheckRedemption)
	r.Post("/badges/evaluate", h.HandleEvaluateBadges)
	r.Post("/badges/condition", h.HandleEvaluateCondition)
	r.Post("/offers", h.HandleOffers)
	r.Get("/referral/code", h.HandleReferralCode)
	r.Get("/referral/rewards", h.HandleReferralRewards)
	return r
}

func TestHandleGetTier(t *testing.T) {
	InitValidator()
	gold := domain.TierConfig{ID: tier.TierGold, Name: "Gold", Threshold: 2000}

	tests := []struct {
		name           string
		id             string
		setupMock      func(*mocks.MockLoyaltyService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			id:   tier.TierGold,
			setupMock: func(m *mocks.MockLoyaltyService) {
				m.On("Tier", mock.Anything, tier.TierGold).Return(gold, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Gold"`,
		},
		{
			name: "Not Found",
			id:   "diamond",
			setupMock: func(m *mocks.MockLoyaltyService) {
				m.On("Tier", mock.Anything, "diamond").
					Return(domain.TierConfig{}, fmt.Errorf("%w: diamond", domain.ErrTierNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgTierNotFoundError,
		},
		{
			name:           "Invalid Id",
			id:             "Gold",
			setupMock:      func(m *mocks.MockLoyaltyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid tier id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockLoyaltyService(t)
			tt.setupMock(mockSvc)

			w := httptest.NewRecorder()
			newRouter(NewLoyaltyHandler(mockSvc)).ServeHTTP(w, httptest.NewRequest("GET", "/tiers/"+tt.id, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleGetTiers(t *testing.T) {
	mockSvc := mocks.NewMockLoyaltyService(t)
	mockSvc.On("Tiers").Return(tier.DefaultTiers())

	w := httptest.NewRecorder()
	newRouter(NewLoyaltyHandler(mockSvc)).ServeHTTP(w, httptest.NewRequest("GET", "/tiers", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp TiersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Tiers, 4)
	assert.Equal(t, tier.TierBronze, resp.Tiers[0].ID)
	assert.Equal(t, tier.TierPlatinum, resp.Tiers[3].ID)
}

func TestHandleSummary(t *testing.T) {
	InitValidator()
	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("Uses Requested Time", func(t *testing.T) {
		mockSvc := mocks.NewMockLoyaltyService(t)
		mockSvc.On("Summary", mock.Anything, "user-1", mock.Anything, fixed).
			Return(&domain.LoyaltySummary{ReferralCode: "PWXYZ"}, nil)

		body := jsonBody(t, SummaryRequest{UserID: "user-1", Now: &fixed})
		w := httptest.NewRecorder()
		newRouter(NewLoyaltyHandler(mockSvc)).ServeHTTP(w, httptest.NewRequest("POST", "/loyalty/summary", body))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"referralCode":"PWXYZ"`)
	})

	t.Run("Defaults To Clock", func(t *testing.T) {
		mockSvc := mocks.NewMockLoyaltyService(t)
		mockSvc.On("Summary", mock.Anything, "", mock.Anything, fixed).
			Return(&domain.LoyaltySummary{}, nil)

		h := NewLoyaltyHandler(mockSvc)
		h.now = func() time.Time { return fixed }

		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, httptest.NewRequest("POST", "/loyalty/summary", strings.NewReader(`{"profile":{}}`)))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Negative Points Rejected", func(t *testing.T) {
		mockSvc := mocks.NewMockLoyaltyService(t)

		w := httptest.NewRecorder()
		newRouter(NewLoyaltyHandler(mockSvc)).ServeHTTP(w,
			httptest.NewRequest("POST", "/loyalty/summary", strings.NewReader(`{"profile":{"currentPoints":-5}}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"currentpoints"`)
	})

	t.Run("XP Above Cap Rejected", func(t *testing.T) {
		mockSvc := mocks.NewMockLoyaltyService(t)

		w := httptest.NewRecorder()
		newRouter(NewLoyaltyHandler(mockSvc)).ServeHTTP(w,
			httptest.NewRequest("POST", "/loyalty/summary", strings.NewReader(`{"profile":{"xp":9223372036854775807}}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"xp":"Must be at most 1000000000000"`)
	})

	t.Run("Service Error Is Not Leaked", func(t *testing.T) {
		mockSvc := mocks.NewMockLoyaltyService(t)
		mockSvc.On("Summary", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("table exploded"))

		w := httptest.NewRecorder()
		newRouter(NewLoyaltyHandler(mockSvc)).ServeHTTP(w, httptest.NewRequest("POST", "/loyalty/summary", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
		assert.NotContains(t, w.Body.String(), "exploded")
	})
}

func TestHandleWashPoints(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockLoyaltyService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"amount":"24.99","isFirstWashToday":true,"profile":{"lifetimePoints":600}}`,
			setupMock: func(m *mocks.MockLoyaltyService) {
				m.On("WashEarnings", mock.Anything, mock.MatchedBy(func(in loyalty.WashInput) bool {
					return in.Amount.Equal(decimal.RequireFromString("24.99")) && in.IsFirstWashToday && in.Profile.LifetimePoints == 600
				})).Return(&domain.WashEarnings{TierID: tier.TierSilver, BasePoints: 30, StreakBonus: 1, TotalPoints: 30, XP: 15}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"totalPoints":30`,
		},
		{
			name: "Numeric Amount Accepted",
			body: `{"amount":10,"profile":{}}`,
			setupMock: func(m *mocks.MockLoyaltyService) {
				m.On("WashEarnings", mock.Anything, mock.Anything).Return(&domain.WashEarnings{TierID: tier.TierBronze, BasePoints: 10, TotalPoints: 10}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"basePoints":10`,
		},
		{
			name:           "Negative Amount",
			body:           `{"amount":"-1","profile":{}}`,
			setupMock:      func(m *mocks.MockLoyaltyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"amount"`,
		},
		{
			name:           "Malformed Amount",
			body:           `{"amount":"lots","profile":{}}`,
			setupMock:      func(m *mocks.MockLoyaltyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Invalid Input From Service",
			body: `{"amount":"5","profile":{}}`,
			setupMock: func(m *mocks.MockLoyaltyService) {
				m.On("WashEarnings", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockLoyaltyService(t)
			tt.setupMock(mockSvc)

			w := httptest.NewRecorder()
			newRouter(NewLoyaltyHandler(mockSvc)).ServeHTTP(w, httptest.NewRequest("POST", "/points/wash", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleCheckRedemption(t *testing.T) {
	InitValidator()
	svc := loyalty.NewService(tier.DefaultTable(), nil, nil)
	router := newRouter(NewLoyaltyHandler(svc))

	tests := []struct {
		name       string
		body       RedemptionRequest
		wantRedeem bool
		wantCode   domain.DenialCode
		wantReason string
	}{
		{
			name: "Allowed",
			body: RedemptionRequest{
				Reward:  domain.Reward{ID: "wax", PointsCost: 100},
				Profile: domain.LoyaltyProfile{CurrentPoints: 100, Tier: tier.TierBronze},
			},
			wantRedeem: true,
		},
		{
			name: "Insufficient Points",
			body: RedemptionRequest{
				Reward:  domain.Reward{ID: "detail", PointsCost: 2000},
				Profile: domain.LoyaltyProfile{CurrentPoints: 500, Tier: tier.TierPlatinum},
			},
			wantCode:   domain.DenialInsufficientPoints,
			wantReason: "You need 1,500 more points to redeem this reward",
		},
		{
			name: "Tier Too Low",
			body: RedemptionRequest{
				Reward:  domain.Reward{ID: "lounge", PointsCost: 10, MinTier: tier.TierGold},
				Profile: domain.LoyaltyProfile{CurrentPoints: 1000, Tier: tier.TierSilver},
			},
			wantCode:   domain.DenialTierTooLow,
			wantReason: "This reward requires Gold tier or higher",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("POST", "/redemption/check", jsonBody(t, tt.body)))

			require.Equal(t, http.StatusOK, w.Code)
			var got domain.RedemptionDecision
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.wantRedeem, got.CanRedeem)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantReason, got.Reason)
		})
	}

	t.Run("Malformed Body", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/redemption/check", strings.NewReader(`{"reward":`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})
}

func TestHandleEvaluateBadges(t *testing.T) {
	InitValidator()
	mockSvc := mocks.NewMockLoyaltyService(t)
	stats := domain.UserStats{TotalWashes: 10}
	mockSvc.On("EvaluateBadges", mock.Anything, stats, map[string]bool{"first_wash": true}).
		Return([]badge.Definition{{Code: "wash_10", Name: "Regular", Description: "Complete 10 washes"}})

	body := jsonBody(t, BadgesRequest{Stats: stats, Earned: []string{"first_wash"}})
	w := httptest.NewRecorder()
	newRouter(NewLoyaltyHandler(mockSvc)).ServeHTTP(w, httptest.NewRequest("POST", "/badges/evaluate", body))

	require.Equal(t, http.StatusOK, w.Code)
	var resp BadgesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Unlocked, 1)
	assert.Equal(t, "wash_10", resp.Unlocked[0].Code)
}

func TestHandleEvaluateBadges_EmptyIsArray(t *testing.T) {
	mockSvc := mocks.NewMockLoyaltyService(t)
	mockSvc.On("EvaluateBadges", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	newRouter(NewLoyaltyHandler(mockSvc)).ServeHTTP(w, httptest.NewRequest("POST", "/badges/evaluate", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"unlocked":[]}`, w.Body.String())
}

func TestHandleEvaluateCondition(t *testing.T) {
	InitValidator()

	t.Run("Met", func(t *testing.T) {
		mockSvc := mocks.NewMockLoyaltyService(t)
		want := domain.BadgeCondition{Type: domain.StatCurrentStreak, Operator: domain.OpGreaterOrEqual, Value: 7}
		mockSvc.On("EvaluateCondition", mock.Anything, want, mock.Anything).Return(true)

		body := `{"condition":{"type":"current_streak","operator":">=","value":7},"stats":{"currentStreak":9}}`
		w := httptest.NewRecorder()
		newRouter(NewLoyaltyHandler(mockSvc)).ServeHTTP(w, httptest.NewRequest("POST", "/badges/condition", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"met":true}`, w.Body.String())
	})

	t.Run("Unknown Operator", func(t *testing.T) {
		mockSvc := mocks.NewMockLoyaltyService(t)

		body := `{"condition":{"type":"wash_count","operator":"!=","value":1}}`
		w := httptest.NewRecorder()
		newRouter(NewLoyaltyHandler(mockSvc)).ServeHTTP(w, httptest.NewRequest("POST", "/badges/condition", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown operator")
	})
}

func TestHandleOffers(t *testing.T) {
	InitValidator()
	mockSvc := mocks.NewMockLoyaltyService(t)
	mockSvc.On("Offers", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.Offer{{ID: "comeback", Type: domain.OfferTypeComeback, Discount: 25}})

	w := httptest.NewRecorder()
	newRouter(NewLoyaltyHandler(mockSvc)).ServeHTTP(w, httptest.NewRequest("POST", "/offers", strings.NewReader(`{"profile":{}}`)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"comeback"`)
}

func TestHandleReferralCode(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockLoyaltyService(t)
		mockSvc.On("ReferralCode", mock.Anything, "user-123").Return("PW4FDP00")

		w := httptest.NewRecorder()
		newRouter(NewLoyaltyHandler(mockSvc)).ServeHTTP(w, httptest.NewRequest("GET", "/referral/code?user_id=user-123", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userId":"user-123","code":"PW4FDP00"}`, w.Body.String())
	})

	t.Run("Missing User", func(t *testing.T) {
		mockSvc := mocks.NewMockLoyaltyService(t)

		w := httptest.NewRecorder()
		newRouter(NewLoyaltyHandler(mockSvc)).ServeHTTP(w, httptest.NewRequest("GET", "/referral/code", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "user_id")
	})
}

func TestHandleReferralRewards(t *testing.T) {
	svc := loyalty.NewService(tier.DefaultTable(), nil, nil)

	w := httptest.NewRecorder()
	newRouter(NewLoyaltyHandler(svc)).ServeHTTP(w, httptest.NewRequest("GET", "/referral/rewards", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.ReferralRewards
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(500), got.ReferrerPoints)
	assert.Equal(t, int64(250), got.RefereePoints)
}
