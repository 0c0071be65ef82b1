package layout

import (
	"log/slog"

	charts "github.com/midbel/chartkit"
)

// Cache remembers the last bar and Marimekko layouts of one chart and
// recomputes them only when the signature of their inputs changes. A Cache
// belongs to a single chart and is not safe for concurrent use.
type Cache struct {
	Logger *slog.Logger

	bars  charts.Memo[uint64, Bars]
	mekko charts.Memo[uint64, Mekko]
}

func (c *Cache) Bars(series []Series, dim charts.Dimension, opts Options) Bars {
	key := Signature(series, dim, opts)
	res, fresh := c.bars.Get(key, func() Bars {
		return Layout(series, dim, opts)
	})
	c.trace("bars", key, fresh)
	return res
}

func (c *Cache) Marimekko(series []Series, dim charts.Dimension, opts Options) Mekko {
	key := Signature(series, dim, opts)
	res, fresh := c.mekko.Get(key, func() Mekko {
		return Marimekko(series, dim, opts)
	})
	c.trace("marimekko", key, fresh)
	return res
}

func (c *Cache) Reset() {
	c.bars.Reset()
	c.mekko.Reset()
}

func (c *Cache) trace(kind string, key uint64, fresh bool) {
	if c.Logger == nil || !fresh {
		return
	}
	c.Logger.Debug("layout recomputed", "kind", kind, "signature", key)
}
