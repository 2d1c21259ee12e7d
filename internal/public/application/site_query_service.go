package application

import (
	"context"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
)

// siteQueryService implements SiteQueryService.
type siteQueryService struct {
	settings SettingsReader
}

func NewSiteQueryService(settings SettingsReader) SiteQueryService {
	return &siteQueryService{settings: settings}
}

// Settings は公開ページへ渡すサイト設定を返す。
// 行が無い場合でも全フィールドが埋まった既定値を返し、描画側の nil チェックを不要にする。
func (s *siteQueryService) Settings(ctx context.Context) (admindomain.SiteSettings, error) {
	settings, err := s.settings.Find(ctx)
	if err != nil {
		return admindomain.SiteSettings{}, err
	}
	if settings == nil {
		return admindomain.DefaultSiteSettings(), nil
	}
	return *settings, nil
}

// storeQueryService implements StoreQueryService.
type storeQueryService struct {
	store StoreReader
}

func NewStoreQueryService(store StoreReader) StoreQueryService {
	return &storeQueryService{store: store}
}

// Info は公開ページへ渡す店舗情報を返す。未設定時は既定の営業時間を補う。
func (s *storeQueryService) Info(ctx context.Context) (admindomain.StoreInfo, error) {
	info, err := s.store.Find(ctx)
	if err != nil {
		return admindomain.StoreInfo{}, err
	}
	if info == nil {
		return admindomain.DefaultStoreInfo(), nil
	}
	if len(info.BusinessHours) == 0 {
		info.BusinessHours = admindomain.DefaultBusinessHours()
	}
	return *info, nil
}
