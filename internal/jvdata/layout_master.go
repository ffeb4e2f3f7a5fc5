package jvdata

// Master records: horses, jockeys, trainers, breeders, owners and bloodline
// tables. These change rarely and are keyed by their registration codes.

// careerTotals emits the cumulative prize-money fields shared by the horse
// master (UM) and the accumulated-results record (CK).
func careerTotals(b *builder) {
	b.bigint("heichi_honsyokin_ruikei", 9)
	b.bigint("syogai_honsyokin_ruikei", 9)
	b.bigint("heichi_fukasyokin_ruikei", 9)
	b.bigint("syogai_fukasyokin_ruikei", 9)
	b.bigint("heichi_syutoku_ruikei", 9)
	b.bigint("syogai_syutoku_ruikei", 9)
}

// finishCounts emits the 1st/2nd/3rd/4th/5th/other finish tallies broken down
// by surface, direction and going, again shared by UM and CK. Each span is six
// 3-byte counters.
func finishCounts(b *builder) {
	for _, name := range []string{
		"chakukaisu_sogo",
		"chakukaisu_chuo",
		"chakukaisu_siba_choku",
		"chakukaisu_siba_migi",
		"chakukaisu_siba_hidari",
		"chakukaisu_dirt_choku",
		"chakukaisu_dirt_migi",
		"chakukaisu_dirt_hidari",
		"chakukaisu_syogai",
		"chakukaisu_siba_ryo",
		"chakukaisu_siba_yaya",
		"chakukaisu_siba_omo",
		"chakukaisu_siba_furyo",
		"chakukaisu_dirt_ryo",
		"chakukaisu_dirt_yaya",
		"chakukaisu_dirt_omo",
		"chakukaisu_dirt_furyo",
		"chakukaisu_syogai_ryo",
		"chakukaisu_syogai_yaya",
		"chakukaisu_syogai_omo",
		"chakukaisu_syogai_furyo",
		"chakukaisu_siba16_sita",
		"chakukaisu_siba22_sita",
		"chakukaisu_siba22_cho",
		"chakukaisu_dirt16_sita",
		"chakukaisu_dirt22_sita",
		"chakukaisu_dirt22_cho",
	} {
		b.text(name, 18)
	}
}

// umLayout is the horse master record (競走馬マスタ).
func umLayout() Layout {
	var b builder
	b.head()
	b.text("ketto_num", 10)
	b.text("del_kubun", 1)
	b.text("reg_date", 8)
	b.text("del_date", 8)
	b.text("birth_date", 8)
	b.text("bamei", 36)
	b.text("bamei_kana", 36)
	b.text("bamei_eng", 60)
	b.text("zaikyu_flag", 1)
	b.text("reserved", 19)
	b.text("uma_kigo_cd", 2)
	b.text("sex_cd", 1)
	b.text("hinsyu_cd", 1)
	b.text("keiro_cd", 2)
	b.text("ketto3_info", 644) // 14 ancestors x (10 + 36)
	b.text("tozai_cd", 1)
	b.text("chokyosi_code", 5)
	b.text("chokyosi_ryakusyo", 8)
	b.text("syotai", 20)
	b.text("breeder_code", 8)
	b.text("breeder_name", 72)
	b.text("sanchi_name", 20)
	b.text("banusi_code", 6)
	b.text("banusi_name", 64)
	careerTotals(&b)
	finishCounts(&b)
	b.text("kyakusitu_keiko", 12)
	b.integer("toroku_race_num", 3)
	return Layout{Tag: "UM", Fields: b.fields}
}

// ckLayout is the per-horse accumulated results record (出走別着度数).
func ckLayout() Layout {
	var b builder
	b.head()
	b.text("ketto_num", 10)
	b.text("bamei", 36)
	careerTotals(&b)
	finishCounts(&b)
	b.text("kyakusitu_keiko", 12)
	b.integer("toroku_race_num", 3)
	return Layout{Tag: "CK", Fields: b.fields}
}

// ksLayout is the jockey master record (騎手マスタ).
func ksLayout() Layout {
	var b builder
	b.head()
	b.text("kisyu_code", 5)
	b.text("del_kubun", 1)
	b.text("issue_date", 8)
	b.text("del_date", 8)
	b.text("birth_date", 8)
	b.text("kisyu_name", 34)
	b.text("reserved", 34)
	b.text("kisyu_name_kana", 30)
	b.text("kisyu_ryakusyo", 8)
	b.text("kisyu_name_eng", 80)
	b.text("sex_kubun", 1)
	b.text("sikaku_cd", 1)
	b.text("minarai_cd", 1)
	b.text("tozai_cd", 1)
	b.text("syotai", 20)
	b.text("chokyosi_code", 5)
	b.text("chokyosi_ryakusyo", 8)
	b.text("hatu_kijyo_info", 134)
	b.text("hatu_syori_info", 128)
	b.text("saikin_jyusyo_info", 489)
	b.text("seiseki_info", 3156)
	return Layout{Tag: "KS", Fields: b.fields}
}

// chLayout is the trainer master record (調教師マスタ).
func chLayout() Layout {
	var b builder
	b.head()
	b.text("chokyosi_code", 5)
	b.text("del_kubun", 1)
	b.text("issue_date", 8)
	b.text("del_date", 8)
	b.text("birth_date", 8)
	b.text("chokyosi_name", 34)
	b.text("chokyosi_name_kana", 30)
	b.text("chokyosi_ryakusyo", 8)
	b.text("chokyosi_name_eng", 80)
	b.text("sex_kubun", 1)
	b.text("tozai_cd", 1)
	b.text("syotai", 20)
	b.text("saikin_jyusyo_info", 489)
	b.text("seiseki_info", 3156)
	return Layout{Tag: "CH", Fields: b.fields}
}

// brLayout is the breeder master record (生産者マスタ).
func brLayout() Layout {
	var b builder
	b.head()
	b.text("breeder_code", 8)
	b.text("breeder_name_co", 72)
	b.text("breeder_name", 72)
	b.text("breeder_name_kana", 72)
	b.text("breeder_name_eng", 168)
	b.text("address_jichi", 20)
	b.text("seiseki_info", 120)
	return Layout{Tag: "BR", Fields: b.fields}
}

// bnLayout is the owner master record (馬主マスタ).
func bnLayout() Layout {
	var b builder
	b.head()
	b.text("banusi_code", 6)
	b.text("banusi_name_co", 64)
	b.text("banusi_name", 64)
	b.text("banusi_name_kana", 50)
	b.text("banusi_name_eng", 100)
	b.text("fukusyoku", 60)
	b.text("seiseki_info", 120)
	return Layout{Tag: "BN", Fields: b.fields}
}

// hnLayout is the broodmare/sire record (繁殖馬マスタ).
func hnLayout() Layout {
	var b builder
	b.head()
	b.text("hansyoku_num", 10)
	b.text("reserved1", 8)
	b.text("ketto_num", 10)
	b.text("reserved2", 1)
	b.text("bamei", 36)
	b.text("bamei_kana", 40)
	b.text("bamei_eng", 80)
	b.integer("birth_year", 4)
	b.text("sex_cd", 1)
	b.text("hinsyu_cd", 1)
	b.text("keiro_cd", 2)
	b.text("mochikomi_kubun", 1)
	b.integer("import_year", 4)
	b.text("sanchi_name", 20)
	b.text("chichi_hansyoku_num", 10)
	b.text("haha_hansyoku_num", 10)
	return Layout{Tag: "HN", Fields: b.fields}
}

// skLayout is the foal record (産駒マスタ).
func skLayout() Layout {
	var b builder
	b.head()
	b.text("ketto_num", 10)
	b.text("birth_date", 8)
	b.text("sex_cd", 1)
	b.text("hinsyu_cd", 1)
	b.text("keiro_cd", 2)
	b.text("mochikomi_kubun", 1)
	b.integer("import_year", 4)
	b.text("breeder_code", 8)
	b.text("sanchi_name", 20)
	b.text("ketto3_info", 140) // 14 ancestors x 10
	return Layout{Tag: "SK", Fields: b.fields}
}

// btLayout is the bloodline-system record (系統情報).
func btLayout() Layout {
	var b builder
	b.head()
	b.text("hansyoku_num", 10)
	b.text("keito_id", 30)
	b.text("keito_name", 36)
	b.text("keito_ex", 6800)
	return Layout{Tag: "BT", Fields: b.fields}
}
