package capture_test

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/genricoloni/snowcap/internal/capture"
	"github.com/genricoloni/snowcap/internal/capture/mocks"
	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/domain/domaintest"
	"github.com/genricoloni/snowcap/internal/geometry"
	"github.com/genricoloni/snowcap/internal/monitor"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestDirect_Capture(t *testing.T) {
	tests := []struct {
		name          string
		display       *domaintest.Display
		crop          *geometry.Rect
		exclude       domain.WindowHandle
		expectedRect  image.Rectangle
		grabErr       error
		expectedError string
	}{
		{
			name:         "Full Monitor",
			display:      domaintest.NewDisplay(1, 1920, 0, 1280, 1024),
			expectedRect: image.Rect(1920, 0, 3200, 1024),
		},
		{
			name:         "Local Crop Translated To Desktop",
			display:      domaintest.NewDisplay(1, 1920, 100, 1280, 1024),
			crop:         &geometry.Rect{MinX: 10, MinY: 20, MaxX: 110, MaxY: 220},
			expectedRect: image.Rect(1930, 120, 2030, 320),
		},
		{
			name:         "Negative Origin",
			display:      domaintest.NewDisplay(1, -1280, -100, 1280, 1024),
			crop:         &geometry.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
			expectedRect: image.Rect(-1280, -100, -1270, -90),
		},
		{
			name:         "Excluded Window Ignored",
			display:      domaintest.NewDisplay(1, 0, 0, 10, 10),
			exclude:      domain.WindowID(42),
			expectedRect: image.Rect(0, 0, 10, 10),
		},
		{
			name:          "Grabber Failure",
			display:       domaintest.NewDisplay(1, 0, 0, 10, 10),
			expectedRect:  image.Rect(0, 0, 10, 10),
			grabErr:       errors.New("XGetImage failed"),
			expectedError: "direct capture of {0,0,10,10} failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			grabber := mocks.NewMockGrabber(ctrl)

			var frame *image.RGBA
			if tt.grabErr == nil {
				frame = image.NewRGBA(image.Rect(0, 0, tt.expectedRect.Dx(), tt.expectedRect.Dy()))
			}
			grabber.EXPECT().CaptureRect(tt.expectedRect).Return(frame, tt.grabErr)

			d := capture.NewDirect(zap.NewNop(), grabber)
			img, err := d.Capture(context.Background(), monitor.NewDescriptor(tt.display, zap.NewNop()), tt.crop, tt.exclude)

			if tt.expectedError != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectedError) {
					t.Fatalf("expected error containing '%s', got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if img != frame {
				t.Error("expected the grabbed frame to be returned as is")
			}
		})
	}
}

func TestDirect_Capture_LogicalDisplay(t *testing.T) {
	tests := []struct {
		name         string
		geo          domain.DisplayGeometry
		crop         *geometry.Rect
		expectedGrab image.Rectangle
		grabbed      image.Point
		expectedSize image.Point
	}{
		{
			name:         "Retina Monitor Grabbed In Points",
			geo:          domain.DisplayGeometry{X: 0, Y: 0, Width: 1440, Height: 900, ScaleFactor: 2, Units: domain.UnitsLogical},
			expectedGrab: image.Rect(0, 0, 1440, 900),
			grabbed:      image.Pt(1440, 900),
			expectedSize: image.Pt(2880, 1800),
		},
		{
			name:         "Crop Converted Back To Points",
			geo:          domain.DisplayGeometry{X: 1440, Y: 0, Width: 1280, Height: 800, ScaleFactor: 2, Units: domain.UnitsLogical},
			crop:         &geometry.Rect{MinX: 100, MinY: 50, MaxX: 301, MaxY: 250},
			expectedGrab: image.Rect(1490, 25, 1591, 125),
			grabbed:      image.Pt(101, 100),
			expectedSize: image.Pt(201, 200),
		},
		{
			name:         "Grabber Already Physical",
			geo:          domain.DisplayGeometry{X: 0, Y: 0, Width: 100, Height: 50, ScaleFactor: 2, Units: domain.UnitsLogical},
			expectedGrab: image.Rect(0, 0, 100, 50),
			grabbed:      image.Pt(200, 100),
			expectedSize: image.Pt(200, 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			grabber := mocks.NewMockGrabber(ctrl)

			frame := image.NewRGBA(image.Rectangle{Max: tt.grabbed})
			for i := range frame.Pix {
				frame.Pix[i] = 0xff
			}
			grabber.EXPECT().CaptureRect(tt.expectedGrab).Return(frame, nil)

			display := &domaintest.Display{DisplayID: 1, DisplayName: "Built-in Retina", Geo: tt.geo}
			d := capture.NewDirect(zap.NewNop(), grabber)
			img, err := d.Capture(context.Background(), monitor.NewDescriptor(display, zap.NewNop()), tt.crop, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if img.Bounds().Size() != tt.expectedSize {
				t.Fatalf("expected size %v, got %v", tt.expectedSize, img.Bounds().Size())
			}
			if a := img.RGBAAt(tt.expectedSize.X-1, tt.expectedSize.Y-1).A; a != 0xff {
				t.Errorf("expected opaque pixel after resampling, alpha %d", a)
			}
		})
	}
}

func TestDirect_PermissionGranted(t *testing.T) {
	d := capture.NewDirect(zap.NewNop(), capture.ScreenGrabber{})
	if !d.PermissionGranted() || !d.RequestPermission() {
		t.Error("direct capture should always be permitted")
	}
}
