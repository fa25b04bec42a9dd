package view

// Labels holds every literal string the cards and container display.
type Labels struct {
	Online  string
	Offline string

	// Prefixes written in front of the formatted values.
	Address string
	Latency string
	Players string
	Checked string

	PlayersTitle      string
	RosterUnavailable string
	RosterNone        string
	Empty             string
}

// EnglishLabels returns the default label set.
func EnglishLabels() Labels {
	return Labels{
		Online:            "online",
		Offline:           "offline",
		Address:           "Address: ",
		Latency:           "Latency: ",
		Players:           "Players online: ",
		Checked:           "Checked: ",
		PlayersTitle:      "Players",
		RosterUnavailable: "roster unavailable",
		RosterNone:        "none",
		Empty:             "No servers yet. Log in to add one.",
	}
}

// ChineseLabels returns the label set of the original Chinese dashboard.
func ChineseLabels() Labels {
	return Labels{
		Online:            "在线",
		Offline:           "离线",
		Address:           "地址：",
		Latency:           "延迟：",
		Players:           "在线人数：",
		Checked:           "检测时间：",
		PlayersTitle:      "玩家列表",
		RosterUnavailable: "列表不可用",
		RosterNone:        "无",
		Empty:             "暂无服务器，请先登录添加。",
	}
}

// LabelsForLocale returns the label set for a locale code. Unknown codes fall
// back to English; ok reports whether the code was recognised.
func LabelsForLocale(locale string) (labels Labels, ok bool) {
	switch locale {
	case "", "en":
		return EnglishLabels(), true
	case "zh", "zh-CN":
		return ChineseLabels(), true
	default:
		return EnglishLabels(), false
	}
}
