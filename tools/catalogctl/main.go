// Command catalogctl inspects a product catalog file the way the shop service sees it.
//
//	go run ./tools/catalogctl list --activity Tennis --max-price 200
//	go run ./tools/catalogctl show t1 -c etc/products.yaml
//	go run ./tools/catalogctl validate -c etc/products.yaml
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
