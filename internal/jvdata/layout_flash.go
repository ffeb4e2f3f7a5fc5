package jvdata

// Race-day flash reports: scratches, condition changes, weather, body weights
// and data-mining predictions. These are announcement streams with no natural
// primary key, so they import append-only.

// avLayout is the scratch announcement (出走取消・競走除外).
func avLayout() Layout {
	var b builder
	b.head()
	b.raceKey()
	b.text("happyo_time", 8)
	b.integer("umaban", 2)
	b.text("bamei", 36)
	b.text("jiyu_kubun", 3)
	return Layout{Tag: "AV", Fields: b.fields}
}

// ccLayout is the course change announcement (コース変更).
func ccLayout() Layout {
	var b builder
	b.head()
	b.raceKey()
	b.text("happyo_time", 8)
	b.integer("kyori_after", 4)
	b.text("track_cd_after", 2)
	b.integer("kyori_before", 4)
	b.text("track_cd_before", 2)
	b.text("jiyu_kubun", 1)
	return Layout{Tag: "CC", Fields: b.fields}
}

// jcLayout is the jockey change announcement (騎手変更).
func jcLayout() Layout {
	var b builder
	b.head()
	b.raceKey()
	b.text("happyo_time", 8)
	b.integer("umaban", 2)
	b.text("bamei", 36)
	b.real("futan_after", 3)
	b.text("kisyu_code_after", 5)
	b.text("kisyu_name_after", 34)
	b.text("minarai_cd_after", 1)
	b.real("futan_before", 3)
	b.text("kisyu_code_before", 5)
	b.text("kisyu_name_before", 34)
	b.text("minarai_cd_before", 1)
	return Layout{Tag: "JC", Fields: b.fields}
}

// tcLayout is the start-time change announcement (発走時刻変更).
func tcLayout() Layout {
	var b builder
	b.head()
	b.raceKey()
	b.text("happyo_time", 8)
	b.text("hasso_time_after", 4)
	b.text("hasso_time_before", 4)
	return Layout{Tag: "TC", Fields: b.fields}
}

// weLayout is the weather and going announcement (天候馬場状態). Keyed to a
// meeting day, not a race, so there is no race number.
func weLayout() Layout {
	var b builder
	b.head()
	b.integer("year", 4)
	b.integer("month_day", 4)
	b.text("jyo_cd", 2)
	b.integer("kaiji", 2)
	b.integer("nichiji", 2)
	b.text("happyo_time", 8)
	b.text("henko_kubun", 1)
	b.text("tenko_jotai", 1)
	b.text("baba_jotai_siba", 1)
	b.text("baba_jotai_dirt", 1)
	b.text("tenko_jotai_before", 1)
	b.text("baba_jotai_siba_before", 1)
	b.text("baba_jotai_dirt_before", 1)
	return Layout{Tag: "WE", Fields: b.fields}
}

// whLayout is the horse weight announcement (馬体重).
func whLayout() Layout {
	var b builder
	b.head()
	b.raceKey()
	b.text("happyo_time", 8)
	b.text("bataijyu_info", 810) // 18 horses x 45
	return Layout{Tag: "WH", Fields: b.fields}
}

// jgLayout is the over-subscription record (競走馬除外情報).
func jgLayout() Layout {
	var b builder
	b.head()
	b.raceKey()
	b.text("ketto_num", 10)
	b.text("bamei", 36)
	b.integer("uketuke_jyuni", 3)
	b.text("syusso_kubun", 1)
	b.text("jogai_kubun", 1)
	return Layout{Tag: "JG", Fields: b.fields}
}

// wfLayout is the WIN5 carryover and payout record (重勝式).
func wfLayout() Layout {
	var b builder
	b.head()
	b.integer("year", 4)
	b.integer("month_day", 4)
	b.text("reserved1", 2)
	b.text("target_race_info", 40) // 5 legs x 8
	b.text("reserved2", 6)
	b.bigint("hatubai_hyosu", 11)
	b.text("yuko_hyosu_info", 55) // 5 legs x 11
	b.text("henkan_flag", 1)
	b.text("fuseiritu_flag", 1)
	b.text("tekichu_nashi_flag", 1)
	b.bigint("carryover_syoki", 15)
	b.bigint("carryover_zandaka", 15)
	b.text("pay_info", 7047) // 243 rows x 29
	return Layout{Tag: "WF", Fields: b.fields}
}

// dmLayout is the mining prediction record (データマイニング予想 タイム型).
func dmLayout() Layout {
	var b builder
	b.head()
	b.raceKey()
	b.text("make_hm", 4)
	b.text("dm_info", 270) // 18 horses x 15
	return Layout{Tag: "DM", Fields: b.fields}
}

// tmLayout is the mining prediction record (データマイニング予想 対戦型).
func tmLayout() Layout {
	var b builder
	b.head()
	b.raceKey()
	b.text("make_hm", 4)
	b.text("tm_info", 108) // 18 horses x 6
	return Layout{Tag: "TM", Fields: b.fields}
}
