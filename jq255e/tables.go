package jq255e

// Precomputed affine windows: multiples 1..16 of G, 2^65*G, 2^130*G and
// 2^195*G for the fixed-base multiplier, and odd multiples 1,3,..,15 of
// G and 2^130*G for the verification combined multiplier.

var mulgenWinG = [16]affinePoint{
	{fieldElement{[4]uint64{0xFFFFFFFFFFFFB722, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0x7FFFFFFFFFFFFFFF}},
		fieldElement{[4]uint64{0x0000000000000001, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}},
		fieldElement{[4]uint64{0x0000000000000001, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}}},
	{fieldElement{[4]uint64{0x2F05397829CB8754, 0x97829CBC14E5E0A7, 0xCBC14E5E0A72F053, 0x65E0A72F05397829}},
		fieldElement{[4]uint64{0xB6DB6DB6DB6D97A3, 0xDB6DB6DB6DB6DB6D, 0x6DB6DB6DB6DB6DB6, 0x36DB6DB6DB6DB6DB}},
		fieldElement{[4]uint64{0x0A72F05397827791, 0x05397829CBC14E5E, 0x829CBC14E5E0A72F, 0x414E5E0A72F05397}}},
	{fieldElement{[4]uint64{0xD95057FC29E518F6, 0x527D8CFD80F182B7, 0xB2AF9A3F45D8F6DA, 0x11945BB224C6E602}},
		fieldElement{[4]uint64{0xC2F21347C4043E79, 0x6B1CEBA6066D4156, 0xAB617909A3E20224, 0x12358E75D30336A0}},
		fieldElement{[4]uint64{0xC4FAF5442BDDB3C7, 0xC58EF652F0485A50, 0x0509961D71E284EF, 0x7287BBB2DC59141C}}},
	{fieldElement{[4]uint64{0x4318414607C6AB0F, 0x3400B87117DA45FB, 0x691B44636A4256DB, 0x70EC8E896A9E26BB}},
		fieldElement{[4]uint64{0x65A29F71130DB4AD, 0x9F71130DFA47C8BB, 0x130DFA47C8BB65A2, 0x7A47C8BB65A29F71}},
		fieldElement{[4]uint64{0x4D0A213B4402088D, 0x853223D7F44E59F2, 0x03ADCBE22101F311, 0x2375E8119918E929}}},
	{fieldElement{[4]uint64{0x2DC2D3741789EEBB, 0xE427EAA88C3BEE68, 0x8BCFBBBB4324F63F, 0x45C1EDAE67F29B6C}},
		fieldElement{[4]uint64{0x1F2B6B08DA5B43EE, 0xE40F8B8BC44A0C63, 0x5866F1F8B35FB70C, 0x185034D250F768D7}},
		fieldElement{[4]uint64{0xC91927493D361051, 0xE00C1E20C1C66FF4, 0x8982206A724B43CC, 0x3E3560E7BB5DF4DA}}},
	{fieldElement{[4]uint64{0x9BC52C6FDD64E133, 0x38EDF8B7F8B8E188, 0xE98C3A469592D1D5, 0x6DB05620A7BB37FB}},
		fieldElement{[4]uint64{0x0BD0C5F1F91D6B18, 0xBB4A410D263610A7, 0xA1AB0B9D98F35F00, 0x4FA6D8B6AFDDC92B}},
		fieldElement{[4]uint64{0x355D1614AEB11ACD, 0x76ED99CCAEE9D26F, 0xD7991971E94A460E, 0x34F3562FDA88753E}}},
	{fieldElement{[4]uint64{0x17293438987D8D2A, 0x279CF73ADCD3772F, 0x3C909696B4038818, 0x33A3C05C7D550853}},
		fieldElement{[4]uint64{0x7EB52414159EF4EA, 0xB885C9D1EB4CC9E1, 0x350914B3EE64BF7F, 0x6DD8CDFA520AED5A}},
		fieldElement{[4]uint64{0x59DAD0E634C75544, 0x818C73930C2A0899, 0x0957AB7A60AC1520, 0x56861F4D0A217C1C}}},
	{fieldElement{[4]uint64{0xB1EE3EECACE73BFD, 0x5277E004AEA16EEC, 0x7952681BD02A45B6, 0x536DD4D34D59EB93}},
		fieldElement{[4]uint64{0x99DA8C93EB513A8B, 0x0706B8B95DEDFC87, 0xC54D8F471F778CE9, 0x4766315BFA2E63E5}},
		fieldElement{[4]uint64{0x4D9B8F5639729F9A, 0x89B68A9C8B0077A8, 0xF3C520B8FCA311FD, 0x532698BCB811270A}}},
	{fieldElement{[4]uint64{0x904992094ACFFA61, 0x98A1A433C755E87B, 0xAA492C177AD3E4F4, 0x5D760C5405D6CFAF}},
		fieldElement{[4]uint64{0xA84A27A9D0A08E61, 0x27E9084D132CCAC1, 0x498C7D8B01F68C40, 0x6957FDFF940E4159}},
		fieldElement{[4]uint64{0x8D2F2DE6815F2EFF, 0x76CA668F88C812F9, 0x56244B8A32B42796, 0x431DA1A672CB2D3C}}},
	{fieldElement{[4]uint64{0x714BB97C533F6E67, 0x7FC03E39552A32B9, 0x50AAC68CF89D3AFA, 0x4FD6F3069E4F91C5}},
		fieldElement{[4]uint64{0x3AA366BBB889903E, 0x55838146CC140A37, 0x4AA37581A9B6AD5E, 0x7B37113C916F803C}},
		fieldElement{[4]uint64{0xD912EBC4E1C6283E, 0xC70EAC518AE5C163, 0x9EDDA370E828C438, 0x252DC97C189ECFD9}}},
	{fieldElement{[4]uint64{0xC758166A66267CEA, 0xF620F14F5C6E659A, 0x90C7A0D609BC50DC, 0x39837B35DBDB5AB7}},
		fieldElement{[4]uint64{0xA9A8911D864E7F82, 0x65CF6B9CAB741725, 0x8C133221E772B327, 0x158521078CD1F209}},
		fieldElement{[4]uint64{0x41583C9A8F92D685, 0xFAE4DC5553E938EB, 0xC3FC1F026C5406EA, 0x5D4A07E9BC1F036B}}},
	{fieldElement{[4]uint64{0x5B65EC077C403B92, 0xF9192F3072387F81, 0xB4C47837DC725B4E, 0x19007B50A56088E6}},
		fieldElement{[4]uint64{0xE4C1C725087640AA, 0xFB902D6A3EF5D5E0, 0x53EF35932E1297EB, 0x67E65CF7E1787343}},
		fieldElement{[4]uint64{0x4203ACE2FF9309B4, 0xAE5BB5318E506208, 0x4742F3CB3DEB52CB, 0x2213A3D93959DA85}}},
	{fieldElement{[4]uint64{0x5669DD87D12F7002, 0xDDA789FB4A2D58E9, 0xC1844EC2004952D2, 0x118FC94162B377A4}},
		fieldElement{[4]uint64{0x90F8839881061965, 0x67D0394FF2BFCB98, 0x913200FCCD1396D8, 0x17F96D76306A3580}},
		fieldElement{[4]uint64{0xF1F0EC984099DC93, 0xE02396E9E43361F5, 0x028EBB02AB0AE384, 0x0E2364672DB22F61}}},
	{fieldElement{[4]uint64{0x3939F44CF0DA9535, 0x5A668C22A3492EE9, 0xF968F7338F922CF2, 0x0B3C9854075F7676}},
		fieldElement{[4]uint64{0x05B49673D2AC4172, 0xA016A6890D77E4E6, 0x7C6DAA970635E1C0, 0x42C8034547A6A04A}},
		fieldElement{[4]uint64{0x0266FAA875DEF4DC, 0x41B211E505C5A659, 0xE13C4A7639E5E234, 0x0C4AC28DE6AF9B7D}}},
	{fieldElement{[4]uint64{0xABC55F7A179D927E, 0x9D9DD93F615DEFAA, 0xDA84A01A1181FE26, 0x6EEF26D87D3B6832}},
		fieldElement{[4]uint64{0x7FFA4AF719120727, 0x705D12571BF74984, 0x4AD1FA649FAE1F07, 0x2F4CA2B6265D7456}},
		fieldElement{[4]uint64{0xB111F1B5F7C6525E, 0x54BD0CFFC1B29AC7, 0xCC7CCE327009957D, 0x0CCF7FF00D563132}}},
	{fieldElement{[4]uint64{0x6825BB5FDB0C9BF7, 0x07051FBC24AEDF22, 0xFC26088F280A0BEA, 0x1897DB365D690FAC}},
		fieldElement{[4]uint64{0x2D808316E1227049, 0x15064C9132683177, 0x706D8A1F41E90ED8, 0x251A19311A6DB76E}},
		fieldElement{[4]uint64{0x95191DCA9E05F91A, 0x0DB49CC10C6EE0A8, 0x7C16D8FF7BF95128, 0x2C8D5EC4B15D04AE}}},
}

var mulgenWinG65 = [16]affinePoint{
	{fieldElement{[4]uint64{0x779009D871F79606, 0xB9D67A9106B8CB54, 0x54C453E54BE22F73, 0x131F48849CB5AC4A}},
		fieldElement{[4]uint64{0xAD5F8FBFC596FA71, 0x415893549DE223FF, 0x395D2181E50A4384, 0x1B313D36A8A7626E}},
		fieldElement{[4]uint64{0x17E71DD1EB9D832B, 0x222B7C0CD599D9CB, 0x48E8393CFF13EC0E, 0x6E78594A21A5AAD2}}},
	{fieldElement{[4]uint64{0xEEE6DD38D8E9151C, 0x1BA7B3E1CBE84C19, 0x7559D60B3193DA7D, 0x0ADECEF07226CD6D}},
		fieldElement{[4]uint64{0x2B7C2F71889E3F33, 0x4CA4C049A5E65CF4, 0x5CD27D909976BFE7, 0x0BE56F359985D602}},
		fieldElement{[4]uint64{0xC699D8CD1BE2027B, 0xC9233D8219ECC70E, 0x6C805A5DABAECD17, 0x40534B306985620E}}},
	{fieldElement{[4]uint64{0xCC098B91295B5D17, 0xA5BF68D03256D86E, 0x84EE32B493633C72, 0x46F6BF5272F77A40}},
		fieldElement{[4]uint64{0x4A504A5DED61CB7F, 0xAF41508342D7801D, 0x0519A68AAB4295EB, 0x098D3AB90B09C2B4}},
		fieldElement{[4]uint64{0xA06F9DAD59A456C6, 0x92D534263FFE78C9, 0x0696A39545C181DE, 0x41A590927B5F6FD7}}},
	{fieldElement{[4]uint64{0x93B1A7E3CD5855D2, 0x1522644129185A8F, 0x4265FDF93F20B5C4, 0x6F29FAC9056CB53E}},
		fieldElement{[4]uint64{0xD98BB32E81B4D89F, 0x5A0FCD3AE1067F08, 0x3B845EF3AFAD3191, 0x3540EB32AA6E2C23}},
		fieldElement{[4]uint64{0x1D5909B1A76336E1, 0x4563C7AD47CE6A39, 0x893FFC0CA3CB3C98, 0x6470D11011381CFF}}},
	{fieldElement{[4]uint64{0x9B7BBC1B7A6DF4B0, 0x8BBD8577E7DD8461, 0x65164F8C91783AE1, 0x0BDDC95D4667AE9A}},
		fieldElement{[4]uint64{0xDB2EB15DD80EB7AB, 0x695C5863633AC0BB, 0x9DD36D925FB45810, 0x4B36B3BE374E74CB}},
		fieldElement{[4]uint64{0x3B02030497F19A1B, 0xBCF6E190CBC99BC3, 0x52217A6F3280BAD3, 0x7563AAD0685E3293}}},
	{fieldElement{[4]uint64{0x2752A7A2F3EADAA2, 0x8B757388299961D5, 0x6CE7A962943E5A2A, 0x1C845A95BD3BA782}},
		fieldElement{[4]uint64{0x2473D6DB1425C001, 0x763067186E58108F, 0x0C0776C9F6ED32DE, 0x143CF8A090ACB085}},
		fieldElement{[4]uint64{0x73CDF9E505579C38, 0xDE3B04BA9040AF87, 0x3A3345F98418DD26, 0x2C301B6BCC1F09C1}}},
	{fieldElement{[4]uint64{0x1EBAD95562FA9BCF, 0xF1E999927D8C4DE2, 0xEF6B5B9490A905BC, 0x2387F155695E446E}},
		fieldElement{[4]uint64{0xE95E218127D26209, 0x33088969E8FB612B, 0xBAC06821F2BF788C, 0x7EE7B8C1D61C83DD}},
		fieldElement{[4]uint64{0x0474E6971F3502A9, 0x624FFDB35FA59240, 0x617E1C89A1A25303, 0x72AB912B16C33383}}},
	{fieldElement{[4]uint64{0x17FF5F6B2982F338, 0x29397B120D9F8926, 0x16A3AEB2E822ACBC, 0x14C79A41B8C8CD00}},
		fieldElement{[4]uint64{0x4C033B2301944CB8, 0x3260DA08A5D337CB, 0x34DFEFB2A6C39FFC, 0x235872299B5B142E}},
		fieldElement{[4]uint64{0x439324FCD04090FB, 0x08AA04266FC23C15, 0x7B1EF0DEBBFAA0EE, 0x2961CB37E34C35A1}}},
	{fieldElement{[4]uint64{0x187B8DAF5E60C1DC, 0x22A915B76B47093E, 0x077EA51363FEFA4B, 0x4DEC73B76E94EA38}},
		fieldElement{[4]uint64{0x6742B67C6086DF92, 0x53193A718D75331F, 0xADD356D1CA14E352, 0x07DF0CC5D7C9E88D}},
		fieldElement{[4]uint64{0x5C9C41C3B8594D9B, 0x643500CDE6FADF0D, 0x0D31937E03003B68, 0x713B783B3766078D}}},
	{fieldElement{[4]uint64{0xDA06F4314D661155, 0xB02A67E2DB1DA041, 0x7C5C316D410137B1, 0x236CD687956F4E67}},
		fieldElement{[4]uint64{0x7982C54051C4DF08, 0x476A1D01EBBFE2BB, 0x3F6064CC7E287D25, 0x79E82E420C17C457}},
		fieldElement{[4]uint64{0x8CE01EA2E8B54114, 0x73165189E2EF99F8, 0x27984BF87B6F0AD1, 0x1813C6ED70DAFA38}}},
	{fieldElement{[4]uint64{0x8352CCFDF77BA0A8, 0xC7C4047B322586E1, 0x72F29982E978639B, 0x3AEA445E515026C8}},
		fieldElement{[4]uint64{0x00FF128613403E58, 0x854CBABF2D02F041, 0xB97069DD65593890, 0x3CC8BC3168B5A376}},
		fieldElement{[4]uint64{0xC303EBB8F65D98BA, 0xF8F2F98E5BEF4381, 0x206DA25D9FE2783E, 0x058DA5FED462C39D}}},
	{fieldElement{[4]uint64{0x8EE71CA88021D1F8, 0xB0DF0BF1929E91A1, 0x97A6D06EB281AE98, 0x419A7DEC26A3D7FA}},
		fieldElement{[4]uint64{0x3688782C6588D284, 0xA50B5985163B51DB, 0x23447D42F7311FA5, 0x51CBB2B65B751D79}},
		fieldElement{[4]uint64{0x877FB541EB5BEC17, 0xDC1EF290D77A0305, 0x15EB451E43025B6A, 0x60570F440CB85A8A}}},
	{fieldElement{[4]uint64{0x4068A732BAD65767, 0xF253A1D14172EFE8, 0xC35ABA567618D74C, 0x3FDAA237E09BB477}},
		fieldElement{[4]uint64{0x6AF277E67A9FAA68, 0xFDEE555C9009703F, 0xAA36C89F8D5B502A, 0x052051EDAFC87131}},
		fieldElement{[4]uint64{0xDED77C4486AAB04C, 0x9B85D45C9AA3A8E1, 0x0F6D233DC4F2C4BA, 0x50C64067319D2237}}},
	{fieldElement{[4]uint64{0xEC2944EFB6EED8F5, 0xADED92BC897B71B1, 0x71830A04FECF5B00, 0x1CE1017108071F0B}},
		fieldElement{[4]uint64{0x86A494FC08EB56DD, 0xF694DF6ED62219A0, 0x214282B022098B86, 0x7182E92FA95620EB}},
		fieldElement{[4]uint64{0x8A96C7C2F4D51B6A, 0x6E06A2EFFBF79614, 0x2F8383D036FFDEC3, 0x136A3753275A04FE}}},
	{fieldElement{[4]uint64{0x8EB88B8ED086DE49, 0xACCFD839D5BDAB0F, 0x40EC5AE373C247FD, 0x763FAE72598E7975}},
		fieldElement{[4]uint64{0xD25E4076E71417FD, 0xAE53B9A6D617E037, 0xEDF6131ABB08D620, 0x406E88577206C6C4}},
		fieldElement{[4]uint64{0xA7B19AB7E5261DBE, 0x5FD6950193780470, 0x69CB583FD3DDA8C2, 0x7A35DA9A106BD4A6}}},
	{fieldElement{[4]uint64{0x4819F142C1EA898F, 0xE948852FC3436317, 0x572C2A14570CFF08, 0x7257A8479DFC6C73}},
		fieldElement{[4]uint64{0x7D37BBB6D0781C73, 0x1ADF4CFE82DAF6AB, 0x6CB90D1DDFBA601C, 0x7B916A823C090D35}},
		fieldElement{[4]uint64{0xFE1CAB3D1875E47C, 0x75D85076E298321B, 0xAA62937A623721E5, 0x78BE6830E382EC23}}},
}

var mulgenWinG130 = [16]affinePoint{
	{fieldElement{[4]uint64{0x7964AB70219C56B7, 0xFB256C51641D8EA6, 0x6044729443D1F9A8, 0x79346218F1B85ADA}},
		fieldElement{[4]uint64{0x6A6F8767CAF58BCB, 0xEF9A2E5ACD520CD9, 0x2B998E19EE40437C, 0x1E3A7692F3E02AB1}},
		fieldElement{[4]uint64{0x12DCF83EC50BD952, 0xC1FEC4C782CB44C6, 0x2FCDD9E72158E8D4, 0x6383719F46FAC0AE}}},
	{fieldElement{[4]uint64{0x4F71A5E9C2AAC4AF, 0xEC86BE3A520E352C, 0x1ED68A21E49558EA, 0x161F88A61EB6D19A}},
		fieldElement{[4]uint64{0x97643EA7C28259E8, 0x64C33BBEA0416456, 0xAC5EBA85AFFFBCEB, 0x1DE0359F8936CEEA}},
		fieldElement{[4]uint64{0xF32ACE061879EA59, 0xC8A5F632AB9427B0, 0xF83CBCACE081587F, 0x3A18C76587D69006}}},
	{fieldElement{[4]uint64{0x596ABB6C7361F28D, 0x6DDA26368CEADE77, 0x859CFAA67A3C03AC, 0x006264785BCE49F5}},
		fieldElement{[4]uint64{0x4A8F6858185A63C2, 0xC29D0227105E6338, 0x4FA122A357313D72, 0x62BAF3EF3C842009}},
		fieldElement{[4]uint64{0x183908457B30E0BC, 0x799295C376EF453F, 0xC5FE42DEAF33DE83, 0x54C34BDF628B654A}}},
	{fieldElement{[4]uint64{0x9F839B2513CCBE22, 0x78880DC45645B9E3, 0x9187FB536D3C4172, 0x67F4C995A06AE2EE}},
		fieldElement{[4]uint64{0x17625F88FFC35397, 0xEF697901DA783099, 0xDCCCD3E1EF458EDC, 0x37EDC360CFBBEDE2}},
		fieldElement{[4]uint64{0x5F7FC0E7A0B94FB0, 0x3E9CC11638D69625, 0x62C64632720B072F, 0x515891835D836913}}},
	{fieldElement{[4]uint64{0x4A25C550315BF949, 0x8A21717D518528CA, 0x5BA732E9ABB9D6E5, 0x2ADFDD08A580098E}},
		fieldElement{[4]uint64{0x055D6CCDE9EC95DF, 0xEB86F24ADFCADBF5, 0x6DDAC4AB9F7AE17C, 0x282E209409ADD692}},
		fieldElement{[4]uint64{0x60BA3A7F6B02F394, 0x5AF736BE387EA15D, 0x541CE0C53EC38691, 0x775F596632FB79E4}}},
	{fieldElement{[4]uint64{0x83DCB91B2DDD01C0, 0x5BA6665DDA75146C, 0x99130BC79B2D8C32, 0x210CD33E4A5A6AD2}},
		fieldElement{[4]uint64{0xBA9DA77EDCAD7528, 0xB6FA24A8892C93FF, 0xF406AD1FFA1ACD6B, 0x7E4F46D5131E195C}},
		fieldElement{[4]uint64{0x85A61A2DEA698452, 0xEB5AD1F6B9C3F150, 0xA68B3F0189B1BA23, 0x3306A93BCA2FEDC4}}},
	{fieldElement{[4]uint64{0x8F02EDFC6773DE13, 0x16420952A0389A7B, 0xA1FA4B3B248FB0A2, 0x37CF7EC0E7602301}},
		fieldElement{[4]uint64{0x9E343B6FEBEF1413, 0xC1293137B7F95D67, 0x6FB5672D05CA0B5B, 0x372239482AEC172D}},
		fieldElement{[4]uint64{0xEDC0FD9628A8DD36, 0xF796A60E89BAA4F4, 0x21A50BBDCF12747E, 0x35266C9ACED8D90B}}},
	{fieldElement{[4]uint64{0x9711BCE82E07CD57, 0xD8DEBDC6378CEF7D, 0xA279143ADB12686A, 0x4FC4F730B2B793DF}},
		fieldElement{[4]uint64{0x21232B19EA446499, 0x0F110F3BEDDC580B, 0x7BFEE5167F928B59, 0x4E1CF6CCC48289F4}},
		fieldElement{[4]uint64{0x1768F10E04969A8C, 0x0834BAF860B519A9, 0x94AAE19ECEC7737D, 0x1DFD019EB5360B34}}},
	{fieldElement{[4]uint64{0x05C1A1E0BAB51F9C, 0x6DA60DAF31722070, 0xD7CF00B1D04465E4, 0x3D9DAAB30A815D03}},
		fieldElement{[4]uint64{0xFFFA0532A28FF940, 0x06134380E791A9D0, 0x24120A75934E696A, 0x6F671B022C83BC57}},
		fieldElement{[4]uint64{0x0BE5ED639180368F, 0xBB03E3FDF6E447C2, 0x4CA31E3B83E29BB6, 0x03BBDFC635166005}}},
	{fieldElement{[4]uint64{0x1E4DB13316C515CD, 0x43A2D658CDFD4319, 0xD68F1B3F5B28AC4E, 0x089093E3E71AE20A}},
		fieldElement{[4]uint64{0x0EE1B5003B071E37, 0x3EC320448D80BCA7, 0x108D5A1C5EC7534A, 0x64ECAAC0EBA1A511}},
		fieldElement{[4]uint64{0x10E500131535C514, 0xD00F9D216D74A32A, 0x8C125FB0A13E6050, 0x4BC50BF7A3AC991A}}},
	{fieldElement{[4]uint64{0xEF2391D9C14BA968, 0xCE23B177E0B06A27, 0xD3CC1E91A2BA4AF5, 0x49DD1840D5C76617}},
		fieldElement{[4]uint64{0x6CC3477AD4AB70A1, 0x0BC92225712BA4D4, 0xD51C733D4564D8F4, 0x029CAFA5599B372A}},
		fieldElement{[4]uint64{0x3D63011A6518ADF3, 0x84FD6E87816D4B31, 0x396102BA67CD8FA6, 0x30F0D235E547B2AD}}},
	{fieldElement{[4]uint64{0xABDB99CD7D189D2F, 0x4C1C751B88621007, 0xC0D578B2C11F3665, 0x0F085C647A9EC8C0}},
		fieldElement{[4]uint64{0xCB9E1D5CB7854025, 0x960067A5C064493E, 0x41F420B5A91ED717, 0x6E81F9FA7E661D8D}},
		fieldElement{[4]uint64{0x96737B3BD1B3FF89, 0xFA5B99758B260B44, 0x4E40C5DCD5EB0507, 0x797141D1E37DDC45}}},
	{fieldElement{[4]uint64{0xC5D559D9217ABFE3, 0x3ADFEB291DB3B2F0, 0x789DF22999A6B853, 0x3B76539AC7DC6057}},
		fieldElement{[4]uint64{0x1A722773E489DDB8, 0xF94983893D4AABD6, 0x59F3D4C5BB3DFDCC, 0x653EE371D2801E6A}},
		fieldElement{[4]uint64{0xA14B344A108032A6, 0x336E96DD99975786, 0x3AF72BF16ED6198C, 0x6E8DE13723DFA5BC}}},
	{fieldElement{[4]uint64{0xA42223FEDE153DCF, 0xCF3DAB2C116699FA, 0x1DC25ED241D58D64, 0x79675137284E8811}},
		fieldElement{[4]uint64{0x460E164D09693F50, 0x96FABF7744D22EC2, 0x216A1928595E868E, 0x50E1BEE9AC402680}},
		fieldElement{[4]uint64{0x2EA3B4425FE17CBC, 0x3076D3BE8227BB81, 0x73999AF999779B03, 0x52BC8B51287FBDD0}}},
	{fieldElement{[4]uint64{0xB21E962DCC9C968E, 0x8D9649ABD8EE3F78, 0x38A9D7CCABB539CA, 0x18371273F6385B25}},
		fieldElement{[4]uint64{0x442C914C64C6EE61, 0x5486463AAA3D41CD, 0x2323BA05744FB271, 0x5CE94782B63D2983}},
		fieldElement{[4]uint64{0x5E85E0F841CFEA05, 0xFE575987C8449D15, 0x4B8F046B40C3632A, 0x79B75334C85A090C}}},
	{fieldElement{[4]uint64{0x5E9C7413BA4AABD5, 0x46A94A599961AD1C, 0x500A71F190ACE9A5, 0x20FF414912475F77}},
		fieldElement{[4]uint64{0x20DDE2D9560BD063, 0x68337F979386B815, 0x9CAE33A6B5F9B94C, 0x0F2ED8418B17674E}},
		fieldElement{[4]uint64{0x42082E618690FF50, 0x3721E53E5901899E, 0xBB88653D342DE052, 0x2EED8F30CF10FA1C}}},
}

var mulgenWinG195 = [16]affinePoint{
	{fieldElement{[4]uint64{0xDA6C7E2AD02BE29A, 0xFA5ECC8635A4E7FA, 0xB063359B7C59F53B, 0x5901D4D2D0083AEA}},
		fieldElement{[4]uint64{0xC6C4EA52864B8022, 0x3FACF03027F2FE05, 0x5A78F8FDAFE0F2B2, 0x7A2058682117A352}},
		fieldElement{[4]uint64{0x827479FBF869915D, 0xD2369B352A0FAC70, 0x759EDBD5AA299C4A, 0x6CF49CB73C1C85C0}}},
	{fieldElement{[4]uint64{0x415FE2DB09454A1F, 0xD0B3F6607067EE2B, 0x01046BDAC11ABBCC, 0x591EE05CC067958E}},
		fieldElement{[4]uint64{0xE7A9C455FDCCE69F, 0xB043C24E23C52866, 0xCBC1DD8A3179B032, 0x597FE7EC4E366C38}},
		fieldElement{[4]uint64{0xF41D8A2928BB5A33, 0xB52F9C48D79CEDB6, 0x31EC395A62DF9B38, 0x5D82A3622AECDB76}}},
	{fieldElement{[4]uint64{0x66FD3E1F6F0CE1D4, 0x1C3DF160577EE38B, 0xA2602CFB47C57756, 0x056858C1EAD53C2F}},
		fieldElement{[4]uint64{0xEBF1C192782AD7E7, 0xDAC867CE0228990B, 0xB0C0AEB839C2A9BB, 0x5D529C2B2E3222F2}},
		fieldElement{[4]uint64{0xDF8E63928F1AE0C2, 0x8692B8050BB45ACF, 0x4CC66CF8E7017825, 0x25F396E870747870}}},
	{fieldElement{[4]uint64{0x7DA1617F26FE4225, 0xACD1808C3CBB6C3F, 0xDC59EA21AA14D7A4, 0x174149529D873B3A}},
		fieldElement{[4]uint64{0xE5AD1FDA050CE7CF, 0xD5179DCB398FE9E2, 0x880F0F9CA2B23DE9, 0x73E9DA1D7C583AB6}},
		fieldElement{[4]uint64{0x1BED8C4A161AD03A, 0x56A385AC631A3736, 0x55CA5A73E2FDED3F, 0x2F2A10845751514B}}},
	{fieldElement{[4]uint64{0x108DEBEA5EF9426D, 0xC6567046ADF4DC26, 0x226B4E7DCA7C5AF0, 0x6567F081CA62A29B}},
		fieldElement{[4]uint64{0x81533FD0CED00FE0, 0x2B41B323457375B0, 0x3428954D0B0B6412, 0x3FB05C6B656FCDE7}},
		fieldElement{[4]uint64{0xD6A2CFBECD1FF35F, 0x3EB933A63E59FA2B, 0x0156D1B1D6CF146F, 0x1FA8E20753FBE8B0}}},
	{fieldElement{[4]uint64{0x3CDFEC7FF5800EC6, 0x3194456D59B81F35, 0x2ECD76AB3E6969E9, 0x2CAFA2372EB93C60}},
		fieldElement{[4]uint64{0xABECE8DEAA4DEFF3, 0xA6B25F5370FF8BED, 0xC70C1F018B95875D, 0x1EEE7F4380019FB8}},
		fieldElement{[4]uint64{0xCC3FC741CC1E0562, 0x93B664F242B13EF8, 0x5D617DE816798EB4, 0x35C68ADE3CAC8CA8}}},
	{fieldElement{[4]uint64{0xD6C0C02A88B9D5DB, 0xFDC1AD2711DF8290, 0x36A5C4D0586E707D, 0x5FC1BE01CA6B4333}},
		fieldElement{[4]uint64{0xC2513D53CE5A6CD2, 0x8AF5B5BD4C9ADB58, 0xDF748C1856292D78, 0x1C54D437C147EB47}},
		fieldElement{[4]uint64{0x02C3EA61A5ABCB56, 0xB56CC897BA7BA956, 0xB8E346F880AA5525, 0x791ECB5E7F925E67}}},
	{fieldElement{[4]uint64{0x61BC934898574A70, 0x6154BA410E092C01, 0x5D9ABB671B57E05E, 0x25AFCFC448040EF2}},
		fieldElement{[4]uint64{0x961441BFA4853698, 0x76396E28425429D3, 0x23187D9C49399AB4, 0x47EC89341C754A72}},
		fieldElement{[4]uint64{0xB5B36F776AF04917, 0x4E7E59858CDEC91B, 0x47DBD9D756A70427, 0x00D090A5B2E0E163}}},
	{fieldElement{[4]uint64{0xEC6F09A1C49378A1, 0x2EB6D04E17121FEA, 0xC523EE1F0B2AD229, 0x31E10496E107283F}},
		fieldElement{[4]uint64{0x790DDCB656DA5EBB, 0x899CA30F8A6C1157, 0xB055E943E160FF52, 0x0C4E4B67E97A3F02}},
		fieldElement{[4]uint64{0xE665E42E421C783F, 0x90F6162E6D8BF1FD, 0x0E7DEA665667BD29, 0x5C4551BBBCA04267}}},
	{fieldElement{[4]uint64{0xD735D5E489185F3B, 0x7D16C0824DE72D4B, 0xBCC5374EACE841B9, 0x74451F1A41044A30}},
		fieldElement{[4]uint64{0x7CBAD6A204D1F6B9, 0xEB725D50999A4399, 0x7C80807D104B0670, 0x44B8942C5DF07889}},
		fieldElement{[4]uint64{0x617C6A396D315D12, 0x4555C3E786404CA2, 0x4584662C9819C28B, 0x3B052B97144BDDCC}}},
	{fieldElement{[4]uint64{0xF2EFE36E8001D112, 0xDFF1161D9CE1383B, 0x2D70A9F1575D648C, 0x5334D3081BF40B2F}},
		fieldElement{[4]uint64{0x30FE96716E7DF796, 0xB6A214969A98317F, 0xEB5423DB7543C3F6, 0x7DD81F0AD475BB65}},
		fieldElement{[4]uint64{0x6E9D90B85FC133E0, 0x4ED760314652F82F, 0x76EEE28489A2673B, 0x69561B43851B3032}}},
	{fieldElement{[4]uint64{0xAF3761B54EB61E14, 0x5998C827AEC2024D, 0x4C59E08DC116A718, 0x5205F45ED82BD978}},
		fieldElement{[4]uint64{0x041881DC4BB15593, 0x0620628690F070A8, 0xF6647FFFA6239BFD, 0x60406418E0A8E484}},
		fieldElement{[4]uint64{0xB186E710CF384958, 0xCC5BCAEE53A27045, 0x5F7FF4B10823ABA8, 0x3C01E53D24508710}}},
	{fieldElement{[4]uint64{0x5AB67E8AB6DE02E8, 0xFC65CD7CE9643427, 0xE9DEFE9908191725, 0x74FFAEAAD3E3A74A}},
		fieldElement{[4]uint64{0x02A5C58CE250DF40, 0x80A9A62960313C1E, 0xEDC81102A9A286D9, 0x03C8B0610E5DE932}},
		fieldElement{[4]uint64{0x9B656127329A1F5C, 0x7F61E2E190853286, 0x220189A7901D370E, 0x5C2FDF1BE72A0992}}},
	{fieldElement{[4]uint64{0xE8DA5B2BBADB2294, 0xEE8BC71827C5D9BB, 0x481F9C15F98BF320, 0x1FDECB7162D44727}},
		fieldElement{[4]uint64{0x2359C265188EE74D, 0x3498D65BDB7611FC, 0x97D9FFD6286A6BD1, 0x63F775224E36165F}},
		fieldElement{[4]uint64{0xD5B3AA1D5B583047, 0xA31076307FE06CED, 0x6492A9AFA98D71BD, 0x534AFBC1B782F441}}},
	{fieldElement{[4]uint64{0x9939DDB4E6C7B9B7, 0xF88878EA5ED39C24, 0x2CA2B9984C196B85, 0x13BCA2B5D82F7B79}},
		fieldElement{[4]uint64{0x14BD04EFD34FC573, 0x58F89E267B42BEA3, 0xDD4D47FA083CC9BF, 0x5C69FCC38DA29629}},
		fieldElement{[4]uint64{0x98A6F2B6623C4605, 0x4F944F4CDD9551F4, 0x5A90BF07D1C9E81B, 0x0B9C09556A326820}}},
	{fieldElement{[4]uint64{0x0BBB71C6E8C4DD9C, 0x4B42773A53938017, 0x9DE89F953A37660F, 0x3256A50ED3457771}},
		fieldElement{[4]uint64{0x805E028481B3D10D, 0x3E6A069F39FCEFCB, 0xDA636B907FED771B, 0x162581D9B675A4E1}},
		fieldElement{[4]uint64{0x52668A8902F702CE, 0x44FDFE7C39061B8D, 0xEEAA462F252FD554, 0x02FA9D8FB083E563}}},
}

var oddWinG = [8]affinePoint{
	{fieldElement{[4]uint64{0xFFFFFFFFFFFFB722, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0x7FFFFFFFFFFFFFFF}},
		fieldElement{[4]uint64{0x0000000000000001, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}},
		fieldElement{[4]uint64{0x0000000000000001, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}}},
	{fieldElement{[4]uint64{0xD95057FC29E518F6, 0x527D8CFD80F182B7, 0xB2AF9A3F45D8F6DA, 0x11945BB224C6E602}},
		fieldElement{[4]uint64{0xC2F21347C4043E79, 0x6B1CEBA6066D4156, 0xAB617909A3E20224, 0x12358E75D30336A0}},
		fieldElement{[4]uint64{0xC4FAF5442BDDB3C7, 0xC58EF652F0485A50, 0x0509961D71E284EF, 0x7287BBB2DC59141C}}},
	{fieldElement{[4]uint64{0x2DC2D3741789EEBB, 0xE427EAA88C3BEE68, 0x8BCFBBBB4324F63F, 0x45C1EDAE67F29B6C}},
		fieldElement{[4]uint64{0x1F2B6B08DA5B43EE, 0xE40F8B8BC44A0C63, 0x5866F1F8B35FB70C, 0x185034D250F768D7}},
		fieldElement{[4]uint64{0xC91927493D361051, 0xE00C1E20C1C66FF4, 0x8982206A724B43CC, 0x3E3560E7BB5DF4DA}}},
	{fieldElement{[4]uint64{0x17293438987D8D2A, 0x279CF73ADCD3772F, 0x3C909696B4038818, 0x33A3C05C7D550853}},
		fieldElement{[4]uint64{0x7EB52414159EF4EA, 0xB885C9D1EB4CC9E1, 0x350914B3EE64BF7F, 0x6DD8CDFA520AED5A}},
		fieldElement{[4]uint64{0x59DAD0E634C75544, 0x818C73930C2A0899, 0x0957AB7A60AC1520, 0x56861F4D0A217C1C}}},
	{fieldElement{[4]uint64{0x904992094ACFFA61, 0x98A1A433C755E87B, 0xAA492C177AD3E4F4, 0x5D760C5405D6CFAF}},
		fieldElement{[4]uint64{0xA84A27A9D0A08E61, 0x27E9084D132CCAC1, 0x498C7D8B01F68C40, 0x6957FDFF940E4159}},
		fieldElement{[4]uint64{0x8D2F2DE6815F2EFF, 0x76CA668F88C812F9, 0x56244B8A32B42796, 0x431DA1A672CB2D3C}}},
	{fieldElement{[4]uint64{0xC758166A66267CEA, 0xF620F14F5C6E659A, 0x90C7A0D609BC50DC, 0x39837B35DBDB5AB7}},
		fieldElement{[4]uint64{0xA9A8911D864E7F82, 0x65CF6B9CAB741725, 0x8C133221E772B327, 0x158521078CD1F209}},
		fieldElement{[4]uint64{0x41583C9A8F92D685, 0xFAE4DC5553E938EB, 0xC3FC1F026C5406EA, 0x5D4A07E9BC1F036B}}},
	{fieldElement{[4]uint64{0x5669DD87D12F7002, 0xDDA789FB4A2D58E9, 0xC1844EC2004952D2, 0x118FC94162B377A4}},
		fieldElement{[4]uint64{0x90F8839881061965, 0x67D0394FF2BFCB98, 0x913200FCCD1396D8, 0x17F96D76306A3580}},
		fieldElement{[4]uint64{0xF1F0EC984099DC93, 0xE02396E9E43361F5, 0x028EBB02AB0AE384, 0x0E2364672DB22F61}}},
	{fieldElement{[4]uint64{0xABC55F7A179D927E, 0x9D9DD93F615DEFAA, 0xDA84A01A1181FE26, 0x6EEF26D87D3B6832}},
		fieldElement{[4]uint64{0x7FFA4AF719120727, 0x705D12571BF74984, 0x4AD1FA649FAE1F07, 0x2F4CA2B6265D7456}},
		fieldElement{[4]uint64{0xB111F1B5F7C6525E, 0x54BD0CFFC1B29AC7, 0xCC7CCE327009957D, 0x0CCF7FF00D563132}}},
}

var oddWinG130 = [8]affinePoint{
	{fieldElement{[4]uint64{0x7964AB70219C56B7, 0xFB256C51641D8EA6, 0x6044729443D1F9A8, 0x79346218F1B85ADA}},
		fieldElement{[4]uint64{0x6A6F8767CAF58BCB, 0xEF9A2E5ACD520CD9, 0x2B998E19EE40437C, 0x1E3A7692F3E02AB1}},
		fieldElement{[4]uint64{0x12DCF83EC50BD952, 0xC1FEC4C782CB44C6, 0x2FCDD9E72158E8D4, 0x6383719F46FAC0AE}}},
	{fieldElement{[4]uint64{0x596ABB6C7361F28D, 0x6DDA26368CEADE77, 0x859CFAA67A3C03AC, 0x006264785BCE49F5}},
		fieldElement{[4]uint64{0x4A8F6858185A63C2, 0xC29D0227105E6338, 0x4FA122A357313D72, 0x62BAF3EF3C842009}},
		fieldElement{[4]uint64{0x183908457B30E0BC, 0x799295C376EF453F, 0xC5FE42DEAF33DE83, 0x54C34BDF628B654A}}},
	{fieldElement{[4]uint64{0x4A25C550315BF949, 0x8A21717D518528CA, 0x5BA732E9ABB9D6E5, 0x2ADFDD08A580098E}},
		fieldElement{[4]uint64{0x055D6CCDE9EC95DF, 0xEB86F24ADFCADBF5, 0x6DDAC4AB9F7AE17C, 0x282E209409ADD692}},
		fieldElement{[4]uint64{0x60BA3A7F6B02F394, 0x5AF736BE387EA15D, 0x541CE0C53EC38691, 0x775F596632FB79E4}}},
	{fieldElement{[4]uint64{0x8F02EDFC6773DE13, 0x16420952A0389A7B, 0xA1FA4B3B248FB0A2, 0x37CF7EC0E7602301}},
		fieldElement{[4]uint64{0x9E343B6FEBEF1413, 0xC1293137B7F95D67, 0x6FB5672D05CA0B5B, 0x372239482AEC172D}},
		fieldElement{[4]uint64{0xEDC0FD9628A8DD36, 0xF796A60E89BAA4F4, 0x21A50BBDCF12747E, 0x35266C9ACED8D90B}}},
	{fieldElement{[4]uint64{0x05C1A1E0BAB51F9C, 0x6DA60DAF31722070, 0xD7CF00B1D04465E4, 0x3D9DAAB30A815D03}},
		fieldElement{[4]uint64{0xFFFA0532A28FF940, 0x06134380E791A9D0, 0x24120A75934E696A, 0x6F671B022C83BC57}},
		fieldElement{[4]uint64{0x0BE5ED639180368F, 0xBB03E3FDF6E447C2, 0x4CA31E3B83E29BB6, 0x03BBDFC635166005}}},
	{fieldElement{[4]uint64{0xEF2391D9C14BA968, 0xCE23B177E0B06A27, 0xD3CC1E91A2BA4AF5, 0x49DD1840D5C76617}},
		fieldElement{[4]uint64{0x6CC3477AD4AB70A1, 0x0BC92225712BA4D4, 0xD51C733D4564D8F4, 0x029CAFA5599B372A}},
		fieldElement{[4]uint64{0x3D63011A6518ADF3, 0x84FD6E87816D4B31, 0x396102BA67CD8FA6, 0x30F0D235E547B2AD}}},
	{fieldElement{[4]uint64{0xC5D559D9217ABFE3, 0x3ADFEB291DB3B2F0, 0x789DF22999A6B853, 0x3B76539AC7DC6057}},
		fieldElement{[4]uint64{0x1A722773E489DDB8, 0xF94983893D4AABD6, 0x59F3D4C5BB3DFDCC, 0x653EE371D2801E6A}},
		fieldElement{[4]uint64{0xA14B344A108032A6, 0x336E96DD99975786, 0x3AF72BF16ED6198C, 0x6E8DE13723DFA5BC}}},
	{fieldElement{[4]uint64{0xB21E962DCC9C968E, 0x8D9649ABD8EE3F78, 0x38A9D7CCABB539CA, 0x18371273F6385B25}},
		fieldElement{[4]uint64{0x442C914C64C6EE61, 0x5486463AAA3D41CD, 0x2323BA05744FB271, 0x5CE94782B63D2983}},
		fieldElement{[4]uint64{0x5E85E0F841CFEA05, 0xFE575987C8449D15, 0x4B8F046B40C3632A, 0x79B75334C85A090C}}},
}

