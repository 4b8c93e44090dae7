package redisx

import (
	"fmt"
	"time"
)

// Ключи одного дня делят hash tag {date}, чтобы скрипт работал и в кластере.
const (
	// Блокировка брони пространства: lock:space:{space_id} -> токен владельца
	KeySpaceLock = "lock:space:%s"

	// Брони пространства за день: day:{date}:space:{space_id} -> JSON []Booking
	KeySpaceDay = "day:{%s}:space:%s"

	// Весь каталог за день: day:{date}:catalog -> JSON []SpaceDay
	KeyCatalogDay = "day:{%s}:catalog"

	// Версия дня, растёт при каждой инвалидации: day:{date}:ver -> int
	KeyDayVersion = "day:{%s}:ver"
)

var (
	TTLDayCache = 5 * time.Minute
	// версия должна пережить любые данные дня
	TTLDayVersion = 2 * TTLDayCache
)

func spaceLockKey(spaceID string) string { return fmt.Sprintf(KeySpaceLock, spaceID) }

func spaceDayKey(spaceID, date string) string { return fmt.Sprintf(KeySpaceDay, date, spaceID) }

func catalogDayKey(date string) string { return fmt.Sprintf(KeyCatalogDay, date) }

func dayVersionKey(date string) string { return fmt.Sprintf(KeyDayVersion, date) }
