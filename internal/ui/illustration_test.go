package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetsRasterize(t *testing.T) {
	for _, name := range []string{"car_rental.svg", "safe_drive.svg", "best_offers.svg", "logo.svg"} {
		t.Run(name, func(t *testing.T) {
			data, err := assets.ReadFile("assets/" + name)
			require.NoError(t, err)

			img, err := rasterize(data, 64, 64)
			require.NoError(t, err)
			assert.Equal(t, 64, img.Bounds().Dx())

			painted := false
			for i := 3; i < len(img.Pix); i += 4 {
				if img.Pix[i] != 0 {
					painted = true
					break
				}
			}
			assert.True(t, painted, "nothing drawn")
		})
	}
}
