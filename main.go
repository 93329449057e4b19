/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/instaboost/apiserver/cmd"

func main() {
	cmd.Execute()
}
