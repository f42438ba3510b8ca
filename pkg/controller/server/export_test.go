package server

var Logger = logger
