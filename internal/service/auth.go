package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"winback/config"
	"winback/internal/core"
	redisRepo "winback/internal/database/redis/repository"
	"winback/internal/dto"
	cErr "winback/internal/pkg/error"
	"winback/internal/tabular"
	"winback/internal/telemetry"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const sessionTokenTTL = 24 * time.Hour

type AuthService struct {
	trace     *telemetry.Trace
	logger    *zap.Logger
	tables    *TableReader
	scope     *ScopeService
	cache     *redisRepo.ViewCacheRepository
	secretKey string
}

func NewAuthService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	tables *TableReader,
	scope *ScopeService,
	cache *redisRepo.ViewCacheRepository,
	conf *config.Configuration,
) *AuthService {
	return &AuthService{
		trace:     trace,
		logger:    logger,
		tables:    tables,
		scope:     scope,
		cache:     cache,
		secretKey: conf.App.SecretKey,
	}
}

func findAuthByEmail(records []tabular.AuthRecord, email string) (tabular.AuthRecord, bool) {
	for _, record := range records {
		if strings.EqualFold(record.Email, email) {
			return record, true
		}
	}
	return tabular.AuthRecord{}, false
}

// Login email 即身分：帳號存在且 Active 才放行，結果進快取
func (s *AuthService) Login(ctx context.Context, req *dto.LoginDto) (*dto.LoginResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if cached, hit, err := s.cache.Get(ctx, core.CacheKeyLogin, req.Email); err != nil {
		s.logger.Warn("view cache get failed", zap.String("key", core.CacheKeyLogin.For(req.Email)), zap.Error(err))
	} else if hit {
		var resp dto.LoginResponseDto
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}

	resp, err := s.profile(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if body, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(ctx, core.CacheKeyLogin, req.Email, string(body)); err != nil {
			s.logger.Warn("view cache set failed", zap.String("key", core.CacheKeyLogin.For(req.Email)), zap.Error(err))
		}
	}
	return resp, nil
}

// ManualLogin email + 密碼。檢查順序固定：帳號不存在 404 → 未啟用 403 → 密碼錯 401。
// 成功時額外簽發 session token。
func (s *AuthService) ManualLogin(ctx context.Context, req *dto.ManualLoginDto) (*dto.LoginResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	authRecords, err := s.tables.AuthRecords(ctx)
	if err != nil {
		return nil, err
	}
	record, found := findAuthByEmail(authRecords, req.Email)
	if !found {
		return nil, cErr.AccountNotFound("no account for " + req.Email)
	}
	if record.Status != core.StatusActive {
		return nil, cErr.AccountInactive("account " + req.Email + " is not active")
	}
	if record.Password != req.Password {
		return nil, cErr.WrongCredential("wrong password for " + req.Email)
	}

	resp, err := s.buildResponse(ctx, record)
	if err != nil {
		return nil, err
	}
	token, err := s.signToken(core.NewIdentity(req.Email))
	if err != nil {
		return nil, cErr.InternalServer("sign session token: " + err.Error())
	}
	resp.Token = token
	return resp, nil
}

// profile 共用的帳號查核（login 與 export 皆走這裡）
func (s *AuthService) profile(ctx context.Context, email string) (*dto.LoginResponseDto, error) {
	authRecords, err := s.tables.AuthRecords(ctx)
	if err != nil {
		return nil, err
	}
	record, found := findAuthByEmail(authRecords, email)
	if !found {
		return nil, cErr.AccountNotFound("no account for " + email)
	}
	if record.Status != core.StatusActive {
		return nil, cErr.AccountInactive("account " + email + " is not active")
	}
	return s.buildResponse(ctx, record)
}

func (s *AuthService) buildResponse(ctx context.Context, record tabular.AuthRecord) (*dto.LoginResponseDto, error) {
	identity := core.NewIdentity(record.Email)
	authorizationRecords, err := s.tables.AuthorizationRecords(ctx)
	if err != nil {
		return nil, err
	}
	authorization := s.scope.AuthorizationFor(identity, authorizationRecords)
	return &dto.LoginResponseDto{
		FullName: record.FullName,
		Email:    record.Email,
		Team:     record.Team,
		Status:   record.Status,
		PICCode:  identity.PICCode,
		Role:     string(authorization.Role),
		Region:   authorization.Region,
		Subteam:  authorization.Subteam,
	}, nil
}

func (s *AuthService) signToken(identity core.Identity) (string, error) {
	now := time.Now().UTC()
	claims := core.Claims{
		Email:   identity.Email,
		PICCode: identity.PICCode,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secretKey))
}
