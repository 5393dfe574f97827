package memory

import (
	"context"

	"mapic/internal/domain/entity"
)

// seedPlaces matches the rows inserted by the 00002_seed_places migration.
var seedPlaces = []entity.Place{
	{Name: "The Coffee House", Description: "Chuỗi cà phê nổi tiếng", Category: entity.CategoryCafe, Latitude: 10.7769, Longitude: 106.7009, Address: "86-88 Cao Thắng, Q3", Rating: 4.5},
	{Name: "Highlands Coffee", Description: "Cà phê Việt Nam", Category: entity.CategoryCafe, Latitude: 10.7797, Longitude: 106.6991, Address: "2 Công xã Paris, Q1", Rating: 4.3},
	{Name: "Phở 24", Description: "Phở Hà Nội chính gốc", Category: entity.CategoryRestaurant, Latitude: 10.7625, Longitude: 106.6820, Address: "5 Nguyễn Trường Tộ, Q4", Rating: 4.8},
	{Name: "Quán Ăn Ngon", Description: "Món ăn Việt Nam", Category: entity.CategoryRestaurant, Latitude: 10.7769, Longitude: 106.7000, Address: "138 Nam Kỳ Khởi Nghĩa, Q1", Rating: 4.7},
	{Name: "Công viên Tao Đàn", Description: "Công viên lớn", Category: entity.CategoryPark, Latitude: 10.7825, Longitude: 106.6920, Address: "Trương Định, Q3", Rating: 4.5},
}

// SeedPlaces loads the default place catalogue.
func (s *Store) SeedPlaces(ctx context.Context) error {
	places := s.Places()
	for i := range seedPlaces {
		place := seedPlaces[i]
		if err := places.Create(ctx, &place); err != nil {
			return err
		}
	}

	return nil
}
