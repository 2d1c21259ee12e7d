package application

import (
	"context"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
)

// storeService implements StoreService.
type storeService struct {
	repo StoreRepository
}

func NewStoreService(repo StoreRepository) StoreService {
	return &storeService{repo: repo}
}

// Get は保存済みの店舗情報を返す。未作成の場合は既定の営業時間入りの空情報を返す。
func (s *storeService) Get(ctx context.Context) (admindomain.StoreInfo, error) {
	info, err := s.repo.Find(ctx)
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

// Update は検証済みコマンドを店舗シングルトンへ upsert する。
// 営業時間は差分更新ではなく全置換。トランザクション境界はリポジトリが持つ。
func (s *storeService) Update(ctx context.Context, cmd UpdateStoreInfoCommand) (*admindomain.StoreInfo, error) {
	existing, err := s.repo.Find(ctx)
	if err != nil {
		return nil, err
	}

	info := admindomain.StoreInfo{
		Name:           cmd.Name,
		Description:    cmd.Description,
		Phone:          cmd.Phone,
		Email:          cmd.Email,
		Address:        cmd.Address,
		BusinessHours:  append([]admindomain.BusinessHour(nil), cmd.BusinessHours...),
		AccessInfo:     cmd.AccessInfo,
		ReservationURL: cmd.ReservationURL,
	}
	if existing != nil {
		info.ID = existing.ID
		info.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Save(ctx, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
