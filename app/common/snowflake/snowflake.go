package snowflake

import (
	"hash/fnv"
	"os"
	"sync"

	bwsnowflake "github.com/bwmarrin/snowflake"
)

var (
	once sync.Once
	node *bwsnowflake.Node
)

// SetNodeID overrides the hostname-derived node ID (0-1023). Call once at bootstrap.
func SetNodeID(id int64) error {
	n, err := bwsnowflake.NewNode(id & 0x3FF)
	if err != nil {
		return err
	}
	once.Do(func() {})
	node = n
	return nil
}

func initNode() {
	if node != nil {
		return
	}
	// node id from the hostname hash (10 bits)
	host, _ := os.Hostname()
	h := fnv.New32a()
	_, _ = h.Write([]byte(host))
	n, err := bwsnowflake.NewNode(int64(h.Sum32()) & 0x3FF)
	if err != nil {
		n, _ = bwsnowflake.NewNode(1)
	}
	node = n
}

// NextString returns a new snowflake id in base58, short enough for cookies.
func NextString() string {
	once.Do(initNode)
	return node.Generate().Base58()
}
