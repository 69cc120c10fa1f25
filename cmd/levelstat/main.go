// Command levelstat inserts pseudo-random keys into the containers and
// renders their internal shape: skip list occupancy per level and the hash
// set's bucket histogram. Handy for eyeballing whether the promotion policy
// and a hash function spread elements the way they should.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/metailurini/collections/hashset"
	"github.com/metailurini/collections/skipset"
)

func main() {
	n := flag.Int("n", 1000, "number of keys to insert")
	seed := flag.Uint64("seed", 42, "rng seed")
	flag.Parse()

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))

	ss := skipset.NewOrdered[int]()
	hs := hashset.New(func(k int) uint64 { return uint64(k) * 2654435761 })

	keyRange := uint64(*n) * 10
	for i := 0; i < *n; i++ {
		k := int(rng.Uint64N(keyRange))
		ss.Add(k)
		hs.Add(k)
	}

	fmt.Printf("inserted: %d  unique: %d  levels: %d  buckets: %d\n\n",
		*n, ss.Len(), ss.LevelCount(), hs.Capacity())

	printLevels(ss)
	fmt.Println()
	printBuckets(hs)
}

func printLevels(ss *skipset.Set[int]) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Level", "Nodes", "Ratio"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)

	prev := 0
	for level := 0; level < ss.LevelCount(); level++ {
		count := ss.ElementsOnLevel(level)
		ratio := "-"
		if level > 0 && prev > 0 {
			ratio = fmt.Sprintf("%.3f", float64(count)/float64(prev))
		}
		table.Append([]string{strconv.Itoa(level), strconv.Itoa(count), ratio})
		prev = count
	}
	table.Render()
}

func printBuckets(hs *hashset.Set[int]) {
	// Histogram: how many buckets hold 0, 1, 2, ... elements.
	hist := make(map[int]int)
	deepest := 0
	for i := 0; i < hs.Capacity(); i++ {
		occupancy := hs.ElementsAtIndex(i)
		hist[occupancy]++
		if occupancy > deepest {
			deepest = occupancy
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Chain Length", "Buckets"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	for occupancy := 0; occupancy <= deepest; occupancy++ {
		table.Append([]string{strconv.Itoa(occupancy), strconv.Itoa(hist[occupancy])})
	}
	table.Render()
}
