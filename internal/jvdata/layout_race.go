package jvdata

import "fmt"

// raLayout is the race detail record (レース詳細).
func raLayout() Layout {
	var b builder
	b.head()
	b.raceKey()
	b.text("youbi_cd", 1)
	b.text("toku_num", 4)
	b.text("hondai", 60)
	b.text("fukudai", 60)
	b.text("kakko", 60)
	b.text("hondai_eng", 120)
	b.text("fukudai_eng", 120)
	b.text("kakko_eng", 120)
	b.text("ryakusyo10", 20)
	b.text("ryakusyo6", 12)
	b.text("ryakusyo3", 6)
	b.text("kubun", 1)
	b.integer("nkai", 3)
	b.text("grade_cd", 1)
	b.text("grade_cd_before", 1)
	b.text("syubetu_cd", 2)
	b.text("kigo_cd", 3)
	b.text("jyuryo_cd", 1)
	b.text("jyoken_cd1", 3)
	b.text("jyoken_cd2", 3)
	b.text("jyoken_cd3", 3)
	b.text("jyoken_cd4", 3)
	b.text("jyoken_cd5", 3)
	b.text("jyoken_name", 60)
	b.integer("kyori", 4)
	b.integer("kyori_before", 4)
	b.text("track_cd", 2)
	b.text("track_cd_before", 2)
	b.text("course_kubun_cd", 2)
	b.text("course_kubun_cd_before", 2)
	for i := 1; i <= 7; i++ {
		b.bigint(fmt.Sprintf("honsyokin%d", i), 8)
	}
	for i := 1; i <= 5; i++ {
		b.text(fmt.Sprintf("honsyokin_before%d", i), 8)
	}
	for i := 1; i <= 5; i++ {
		b.bigint(fmt.Sprintf("fukasyokin%d", i), 8)
	}
	for i := 1; i <= 3; i++ {
		b.text(fmt.Sprintf("fukasyokin_before%d", i), 8)
	}
	b.text("hasso_time", 4)
	b.text("hasso_time_before", 4)
	b.integer("toroku_tosu", 2)
	b.integer("syusso_tosu", 2)
	b.integer("nyusen_tosu", 2)
	b.text("tenko_cd", 1)
	b.text("siba_baba_cd", 1)
	b.text("dirt_baba_cd", 1)
	for i := 1; i <= 25; i++ {
		b.real(fmt.Sprintf("lap_time%d", i), 3)
	}
	b.real("syogai_mile_time", 4)
	b.real("haron_time_s3", 3)
	b.real("haron_time_s4", 3)
	b.real("haron_time_l3", 3)
	b.real("haron_time_l4", 3)
	for i := 1; i <= 4; i++ {
		b.text(fmt.Sprintf("corner%d", i), 1)
		b.text(fmt.Sprintf("syukaisu%d", i), 1)
		b.text(fmt.Sprintf("jyuni%d", i), 70)
	}
	b.text("record_up_kubun", 1)
	return Layout{Tag: "RA", Fields: b.fields}
}

// seLayout is the per-horse race result record (馬毎レース情報).
func seLayout() Layout {
	var b builder
	b.head()
	b.raceKey()
	b.integer("wakuban", 1)
	b.integer("umaban", 2)
	b.text("ketto_num", 10)
	b.text("bamei", 36)
	b.text("uma_kigo_cd", 2)
	b.text("sex_cd", 1)
	b.text("hinsyu_cd", 1)
	b.text("keiro_cd", 2)
	b.integer("barei", 2)
	b.text("tozai_cd", 1)
	b.text("chokyosi_code", 5)
	b.text("chokyosi_ryakusyo", 8)
	b.text("banusi_code", 6)
	b.text("banusi_name", 64)
	b.text("fukusyoku", 60)
	b.text("reserved1", 60)
	b.real("futan", 3)
	b.real("futan_before", 3)
	b.text("blinker", 1)
	b.text("reserved2", 1)
	b.text("kisyu_code", 5)
	b.text("kisyu_code_before", 5)
	b.text("kisyu_ryakusyo", 8)
	b.text("kisyu_ryakusyo_before", 8)
	b.text("minarai_cd", 1)
	b.text("minarai_cd_before", 1)
	b.integer("ba_taijyu", 3)
	b.text("zogen_fugo", 1)
	b.integer("zogen_sa", 3)
	b.text("ijyo_cd", 1)
	b.integer("nyusen_jyuni", 2)
	b.integer("kakutei_jyuni", 2)
	b.text("dochaku_kubun", 1)
	b.text("dochaku_tosu", 1)
	b.real("time", 4)
	b.text("chakusa_cd", 3)
	b.text("chakusa_cd_p", 3)
	b.text("chakusa_cd_pp", 3)
	b.integer("jyuni1c", 2)
	b.integer("jyuni2c", 2)
	b.integer("jyuni3c", 2)
	b.integer("jyuni4c", 2)
	b.real("odds", 4)
	b.integer("ninki", 2)
	b.bigint("honsyokin", 8)
	b.bigint("fukasyokin", 8)
	b.text("reserved3", 3)
	b.text("reserved4", 3)
	b.real("haron_time_l4", 3)
	b.real("haron_time_l3", 3)
	b.text("chakuuma_info", 138)
	b.text("time_diff", 4)
	b.text("record_up_kubun", 1)
	b.text("dm_kubun", 1)
	b.text("dm_time", 5)
	b.text("dm_gosa_plus", 4)
	b.text("dm_gosa_minus", 4)
	b.integer("dm_jyuni", 2)
	b.text("kyakusitu_kubun", 1)
	return Layout{Tag: "SE", Fields: b.fields}
}

// hrLayout is the payout record (払戻). The per-bet payout blocks stay as
// single spans; downstream consumers split them by the fixed element widths.
func hrLayout() Layout {
	var b builder
	b.head()
	b.raceKey()
	b.integer("toroku_tosu", 2)
	b.integer("syusso_tosu", 2)
	for i := 1; i <= 9; i++ {
		b.text(fmt.Sprintf("fuseiritu_flag%d", i), 1)
	}
	for i := 1; i <= 9; i++ {
		b.text(fmt.Sprintf("tokubarai_flag%d", i), 1)
	}
	for i := 1; i <= 9; i++ {
		b.text(fmt.Sprintf("henkan_flag%d", i), 1)
	}
	b.text("henkan_uma_info", 28)
	b.text("henkan_waku_info", 8)
	b.text("henkan_dowaku_info", 8)
	b.text("pay_tansyo_info", 39)
	b.text("pay_fukusyo_info", 65)
	b.text("pay_wakuren_info", 39)
	b.text("pay_umaren_info", 48)
	b.text("pay_wide_info", 112)
	b.text("pay_reserved_info", 48)
	b.text("pay_umatan_info", 96)
	b.text("pay_sanrenpuku_info", 54)
	b.text("pay_sanrentan_info", 114)
	return Layout{Tag: "HR", Fields: b.fields}
}
