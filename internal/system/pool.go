package system

import (
	"image"
	"sync"
)

// Пул *image.RGBA по размерам. Режим -watch перерисовывает превью на каждое
// сохранение уровня, переиспользование холстов снимает нагрузку с GC.
var imagePools sync.Map // image.Rectangle -> *sync.Pool

// GetImage возвращает холст нужного размера из пула или создает новый.
// Содержимое не очищается, вызывающий обязан перерисовать его целиком.
func GetImage(rect image.Rectangle) *image.RGBA {
	pool, _ := imagePools.LoadOrStore(rect, &sync.Pool{
		New: func() any { return image.NewRGBA(rect) },
	})
	return pool.(*sync.Pool).Get().(*image.RGBA)
}

// PutImage возвращает холст в пул.
func PutImage(img *image.RGBA) {
	if img == nil {
		return
	}
	if pool, ok := imagePools.Load(img.Rect); ok {
		pool.(*sync.Pool).Put(img)
	}
}
