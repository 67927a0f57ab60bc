package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"github.com/yuichi110/drawlib/style"
)

var (
	fontsMu sync.Mutex
	fonts   = map[style.Font]*sfnt.Font{}
)

// loadFont parses (once) and returns the embedded font backing the
// given font kind.
func loadFont(kind style.Font) (*sfnt.Font, error) {
	fontsMu.Lock()
	defer fontsMu.Unlock()
	if f, ok := fonts[kind]; ok {
		return f, nil
	}

	var data []byte
	switch kind {
	case style.FontSansRegular:
		data = goregular.TTF
	case style.FontSansBold:
		data = gobold.TTF
	case style.FontSansItalic:
		data = goitalic.TTF
	case style.FontMonoRegular:
		data = gomono.TTF
	default:
		return nil, fmt.Errorf("render: unknown font %v", kind)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("render: parsing embedded font %v: %w", kind, err)
	}
	fonts[kind] = f
	return f, nil
}
