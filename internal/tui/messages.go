package tui

import (
	"github.com/toastd/toastd/internal/server"
	"github.com/toastd/toastd/toast"
)

type localNoticeMsg struct {
	level toast.Level
	text  string
}

type remoteNoticeMsg struct {
	incoming server.Incoming
}

type noticeChanClosedMsg struct{}

type composeSubmitMsg struct {
	text string
}

type composeCancelMsg struct{}
