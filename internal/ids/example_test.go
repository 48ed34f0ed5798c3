package ids_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/authcorp/libs/go/brand"
	"github.com/authcorp/libs/go/brand/internal/ids"
)

func ExampleUncheckedUserID() {
	id := ids.UncheckedUserID(10)
	fmt.Println(id)
	fmt.Printf("%d %v\n", id, id.IntoRaw())
	// Output:
	// UserID(10)
	// 10 10
}

func ExampleUserID_logging() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	logger.Info("order placed", "user", ids.UncheckedUserID(3), "order", ids.UncheckedOrderID(7))
	// Output:
	// level=INFO msg="order placed" user=3 order=7
}

func ExampleOrderID_compare() {
	a, b := ids.UncheckedOrderID(1), ids.UncheckedOrderID(2)
	fmt.Println(brand.Compare(a, b), brand.Less(b, a), brand.Max(a, b))
	// Output:
	// -1 false OrderID(2)
}
