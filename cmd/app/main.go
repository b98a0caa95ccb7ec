package main

func main() {
	initApp()
}
