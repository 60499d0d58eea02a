// Command avl builds an AVL tree from the keys given as arguments
// (or on one line of stdin), then prints its traversals and shape.
//
//	avl --remove 4 9 4 15 6 12 3 2
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"go.lepak.sg/avltree/tree/avl"
	"go.lepak.sg/avltree/tree/iterator"
)

var (
	removeKeys = pflag.IntSlice("remove", nil, "keys to remove after the tree is built")
	searchKeys = pflag.IntSlice("search", nil, "keys to look up in the final tree")
	dump       = pflag.BoolP("dump", "d", false, "annotate the drawing with heights and balance factors")
)

func main() {
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	// glog checks that the standard flag set was parsed
	_ = flag.CommandLine.Parse(nil)
	defer glog.Flush()

	args := pflag.Args()
	if len(args) == 0 {
		fmt.Print("keys: ")
		raw, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			glog.Exitf("cannot read keys: %v", err)
		}
		args = strings.Fields(raw)
	}

	keys, err := parseInts(args)
	if err != nil {
		glog.Exitf("bad key: %v", err)
	}

	tr := &avl.Tree[int]{}
	for _, k := range keys {
		if !tr.Insert(k) {
			glog.V(1).Infof("duplicate key %d ignored", k)
		}
	}

	for _, k := range *removeKeys {
		if tr.Remove(k) {
			glog.V(1).Infof("removed %d", k)
		} else {
			glog.Warningf("cannot remove %d: not in the tree", k)
		}
	}

	if err := tr.Check(); err != nil {
		glog.Fatalf("tree is broken: %v", err)
	}

	for _, o := range []iterator.Traversal{iterator.Pre, iterator.In, iterator.Post} {
		fmt.Printf("%s: %v\n", o, tr.Traverse(o))
	}

	fmt.Println("keys:", tr.Len())
	fmt.Println("height:", tr.Height(), "bound:", avl.HeightBound(tr.Len()))

	st := tr.Stats()
	for c := avl.LeftLeft; c <= avl.RightLeft; c++ {
		if st.Insert[c] > 0 || st.Remove[c] > 0 {
			fmt.Printf("%s: %d on insert, %d on remove\n", c, st.Insert[c], st.Remove[c])
		}
	}

	for _, k := range *searchKeys {
		if v, ok := tr.Search(k); ok {
			fmt.Printf("found %d (height %d, balance %+d)\n", k, v.Height(), v.Balance())
		} else {
			fmt.Printf("%d not found\n", k)
		}
	}

	fmt.Println("tree:")
	if *dump {
		fmt.Print(tr.Dump())
	} else {
		fmt.Print(tr.String())
	}

	glog.V(1).Infof("released %d nodes", tr.Clear())
}

func parseInts(raws []string) ([]int, error) {
	out := make([]int, len(raws))

	for i, rawNum := range raws {
		num, err := strconv.Atoi(rawNum)
		if err != nil {
			return nil, err
		}

		out[i] = num
	}
	return out, nil
}
