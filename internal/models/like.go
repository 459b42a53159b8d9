package models

// LikeState — результат переключения лайка: итоговое состояние
// для текущего пользователя и актуальное значение счётчика.
type LikeState struct {
	Liked bool
	Likes int64
}
