package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"qltro/constants"
	"qltro/dto"
	"qltro/errors"
	"qltro/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// RoomSearchService tìm phòng theo câu truy vấn tự do
// ("phòng trống còn chỗ khu A", "giường máy lạnh"...)
type RoomSearchService struct {
	db *gorm.DB
}

// NewRoomSearchService tạo instance mới của RoomSearchService
func NewRoomSearchService(db *gorm.DB) *RoomSearchService {
	return &RoomSearchService{db: db}
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// parseWantedStatus đoán trạng thái phòng người dùng đang tìm
func parseWantedStatus(query string) int {
	availableKeywords := []string{"trong", "con cho", "phong trong", "giuong trong"}
	fullKeywords := []string{"day", "het cho", "full"}

	availableMatcher := createMatcher(availableKeywords)
	fullMatcher := createMatcher(fullKeywords)

	if match := availableMatcher.Closest(query); match != "" && strings.Contains(query, match) {
		return constants.RoomStatusAvailable
	}
	if match := fullMatcher.Closest(query); match != "" && strings.Contains(query, match) {
		return constants.RoomStatusFullyOccupied
	}
	return -1
}

// parseWantedCapacity bắt số giường đi kèm từ "giường" trong query
func parseWantedCapacity(query string) int {
	re := regexp.MustCompile(`(\d+)\s*giuong`)
	match := re.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}

	capacity, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return capacity
}

// prepareRoomNoList gom danh sách số phòng duy nhất cho closestmatch
func prepareRoomNoList(rooms []models.Room) []string {
	uniqueValues := make(map[string]bool)
	for _, room := range rooms {
		if room.RoomNo != "" {
			uniqueValues[normalizeInput(room.RoomNo)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// calculateRoomScore tính điểm phù hợp cho một phòng
func calculateRoomScore(query string, room *models.Room, cmRoomNo *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	if cmRoomNo.Closest(normalizedQuery) == normalizeInput(room.RoomNo) {
		score += 20
	}

	if similarity := calculateSimilarity(normalizedQuery, normalizeInput(room.RoomNo)); similarity > 0.7 {
		score += 10
	}

	if wantedStatus := parseWantedStatus(normalizedQuery); wantedStatus != -1 && wantedStatus == room.DerivedStatus() {
		score += 15
	}

	if wantedCapacity := parseWantedCapacity(normalizedQuery); wantedCapacity != -1 && wantedCapacity == room.Capacity {
		score += 10
	}

	return score
}

// Search chấm điểm toàn bộ phòng theo query và trả về danh sách giảm dần
func (s *RoomSearchService) Search(query string, limit int) ([]dto.RoomSearchResult, error) {
	var rooms []models.Room
	if err := s.db.Preload("Beds").Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách phòng", err)
	}

	cmRoomNo := createMatcher(prepareRoomNoList(rooms))

	var results []dto.RoomSearchResult
	for i := range rooms {
		score := calculateRoomScore(query, &rooms[i], cmRoomNo)
		if score > 0 {
			results = append(results, dto.RoomSearchResult{
				Room:  ToRoomResponse(&rooms[i]),
				Score: score,
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
